package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/common"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
)

// ListRegistrations returns every registration ordered by creation time,
// newest first. Rows created in the same instant fall back to id order so
// the listing stays deterministic.
func (s *SQLiteStore) ListRegistrations(ctx context.Context) ([]model.Registration, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, email, registration_type, company, phone, created_at
		FROM registrations
		ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query registrations: %w", err)
	}
	defer rows.Close()

	var registrations []model.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		registrations = append(registrations, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}

	slog.Debug("retrieved registrations", "count", len(registrations))
	return registrations, nil
}

// CreateRegistration inserts a registration and returns the stored copy
// with the assigned id and creation timestamp.
func (s *SQLiteStore) CreateRegistration(ctx context.Context, input model.RegistrationInput) (*model.Registration, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if missing := input.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s required", common.ErrValidation, strings.Join(missing, ", "))
	}

	query := `
		INSERT INTO registrations (name, email, registration_type, company, phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, query,
		input.Name, input.Email, input.Category,
		nullable(input.Company), nullable(input.Phone), now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get registration id: %w", err)
	}

	registration := &model.Registration{
		ID:        id,
		Name:      input.Name,
		Email:     input.Email,
		Category:  input.Category,
		Company:   input.Company,
		Phone:     input.Phone,
		CreatedAt: now,
	}

	slog.Info("created registration", "id", id, "category", registration.CategoryKey())
	return registration, nil
}

// DeleteRegistration removes the registration with the given id. Deleting
// an unknown id returns common.ErrNotFound and changes nothing.
func (s *SQLiteStore) DeleteRegistration(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM registrations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("registration %d: %w", id, common.ErrNotFound)
	}

	slog.Info("deleted registration", "id", id)
	return nil
}

// scanRegistration reads one row, mapping NULL optional columns to empty
// strings.
func scanRegistration(rows *sql.Rows) (model.Registration, error) {
	var (
		reg     model.Registration
		company sql.NullString
		phone   sql.NullString
	)

	if err := rows.Scan(&reg.ID, &reg.Name, &reg.Email, &reg.Category, &company, &phone, &reg.CreatedAt); err != nil {
		return model.Registration{}, err
	}

	reg.Company = company.String
	reg.Phone = phone.String
	return reg, nil
}

// nullable maps an empty optional field to NULL.
func nullable(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
