package registries

import (
	"context"
	"fmt"
	"io"

	"bizdesk.app/bizdesk/core"
	"bizdesk.app/bizdesk/core/models"
	"bizdesk.app/bizdesk/core/registry"
	"bizdesk.app/bizdesk/utils"
)

// RowError is a CSV row that could not be imported. Line counts the header as 1.
type RowError struct {
	Line int
	Err  error
}

type ImportResult struct {
	Created []models.Client
	Skipped []RowError
}

// ImportClients creates one client per CSV row (name, email, phone, address).
// Invalid rows are skipped and reported; the first remote failure stops the import.
func ImportClients(ctx context.Context, reg *registry.Registry[models.Client], r io.Reader) (ImportResult, error) {
	var res ImportResult

	records, err := utils.ParseCSVRecords(r)
	if err != nil {
		return res, core.NewValidationError(fmt.Sprintf("invalid csv: %v", err))
	}

	for i, rec := range records {
		client := models.Client{
			Name:    rec["name"],
			Email:   rec["email"],
			Phone:   rec["phone"],
			Address: rec["address"],
		}

		saved, err := reg.Create(ctx, client)
		if core.IsValidation(err) {
			res.Skipped = append(res.Skipped, RowError{Line: i + 2, Err: err})
			continue
		}
		if err != nil {
			return res, err
		}
		res.Created = append(res.Created, saved)
	}
	return res, nil
}
