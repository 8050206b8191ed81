package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/plutoledger/pluto/internal/errors"
	"github.com/plutoledger/pluto/internal/models"
)

// TransactionInput is the payload for creating a transaction. Dates arrive as
// strings and references as ids; normalization parses and checks them before
// the atomic unit starts, so a unit never begins with malformed input.
type TransactionInput struct {
	Type        string              `json:"type"`
	Amount      decimal.Decimal     `json:"amount"`
	Date        string              `json:"date"`
	Description string              `json:"description"`
	Account     string              `json:"account"`
	Category    string              `json:"category"`
	CreditCard  string              `json:"credit_card"`
	Investment  string              `json:"investment"`
	Attachments []models.Attachment `json:"attachments"`
}

// TransactionUpdateInput is a partial payload; nil fields are left untouched.
type TransactionUpdateInput struct {
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date"`
	Description *string          `json:"description"`
	Account     *string          `json:"account"`
	Category    *string          `json:"category"`
	Investment  *string          `json:"investment"`
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func checkReference(field, id string) (*string, error) {
	if id == "" {
		return nil, nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, &apperrors.ErrValidation{Field: field, Message: "must be a valid id"}
	}
	ref := id
	return &ref, nil
}

// normalize converts the raw payload into a persistable transaction owned by
// userID.
func (in *TransactionInput) normalize(userID string) (*models.Transaction, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, &apperrors.ErrValidation{Field: "date", Message: "must be an RFC3339 or YYYY-MM-DD date"}
	}

	if in.Account == "" {
		return nil, &apperrors.ErrValidation{Field: "account", Message: "is required"}
	}
	if _, err := uuid.Parse(in.Account); err != nil {
		return nil, &apperrors.ErrValidation{Field: "account", Message: "must be a valid id"}
	}

	category, err := checkReference("category", in.Category)
	if err != nil {
		return nil, err
	}
	creditCard, err := checkReference("credit_card", in.CreditCard)
	if err != nil {
		return nil, err
	}
	investment, err := checkReference("investment", in.Investment)
	if err != nil {
		return nil, err
	}

	attachments := make([]models.Attachment, len(in.Attachments))
	copy(attachments, in.Attachments)
	for i := range attachments {
		if attachments[i].ID == "" {
			attachments[i].ID = uuid.NewString()
		}
		if attachments[i].UploadedAt.IsZero() {
			attachments[i].UploadedAt = time.Now()
		}
	}

	tx := &models.Transaction{
		ID:           uuid.NewString(),
		UserID:       userID,
		Type:         in.Type,
		Amount:       in.Amount,
		Date:         date,
		Description:  in.Description,
		AccountID:    in.Account,
		CategoryID:   category,
		CreditCardID: creditCard,
		InvestmentID: investment,
		Attachments:  attachments,
	}

	if err := tx.Validate(); err != nil {
		return nil, &apperrors.ErrValidation{Field: "transaction", Message: err.Error()}
	}

	return tx, nil
}

// transactionPatch is a normalized partial update.
type transactionPatch struct {
	Type        *string
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
	AccountID   *string
	CategoryID  *string
	Investment  *string
}

// normalize parses and checks the partial payload.
func (in *TransactionUpdateInput) normalize() (*transactionPatch, error) {
	patch := &transactionPatch{
		Amount:      in.Amount,
		Description: in.Description,
	}

	if in.Type != nil {
		t := *in.Type
		if t != models.TypeIncome && t != models.TypeExpense && t != models.TypeInvestment {
			return nil, &apperrors.ErrValidation{Field: "type", Message: "must be income, expense or investment"}
		}
		patch.Type = &t
	}
	if in.Amount != nil && in.Amount.IsNegative() {
		return nil, &apperrors.ErrValidation{Field: "amount", Message: "must be non-negative"}
	}
	if in.Date != nil {
		date, err := parseDate(*in.Date)
		if err != nil {
			return nil, &apperrors.ErrValidation{Field: "date", Message: "must be an RFC3339 or YYYY-MM-DD date"}
		}
		patch.Date = &date
	}

	var err error
	if in.Account != nil {
		if patch.AccountID, err = checkReference("account", *in.Account); err != nil {
			return nil, err
		}
	}
	if in.Category != nil {
		if patch.CategoryID, err = checkReference("category", *in.Category); err != nil {
			return nil, err
		}
	}
	if in.Investment != nil {
		if patch.Investment, err = checkReference("investment", *in.Investment); err != nil {
			return nil, err
		}
	}

	return patch, nil
}

// applyTo merges the patch into a copy of the original record.
func (p *transactionPatch) applyTo(original *models.Transaction) *models.Transaction {
	merged := *original

	if p.Type != nil {
		merged.Type = *p.Type
	}
	if p.Amount != nil {
		merged.Amount = *p.Amount
	}
	if p.Date != nil {
		merged.Date = *p.Date
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.AccountID != nil {
		merged.AccountID = *p.AccountID
	}
	if p.CategoryID != nil {
		merged.CategoryID = p.CategoryID
	}
	if p.Investment != nil {
		merged.InvestmentID = p.Investment
	}
	merged.UpdatedAt = time.Now()

	return &merged
}
