package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain"
)

// ContactRepository define el contrato de persistencia para mensajes de contacto.
type ContactRepository interface {
	Insert(ctx context.Context, msg domain.ContactMessage) (domain.ContactMessage, error)
	ListAll(ctx context.Context) ([]domain.ContactMessage, error)
	Probe(ctx context.Context) error
}

// PgContactRepository implementa ContactRepository usando pgxpool.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

func (r *PgContactRepository) Insert(ctx context.Context, msg domain.ContactMessage) (domain.ContactMessage, error) {
	const query = `
		INSERT INTO contact_messages (name, email, subject, message, ip_address, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, updated_at
	`

	var ipAddress interface{}
	if msg.IPAddress != "" {
		ipAddress = msg.IPAddress
	}

	err := r.pool.QueryRow(ctx, query,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
		ipAddress,
		msg.Status,
		msg.CreatedAt,
	).Scan(&msg.ID, &msg.UpdatedAt)
	if err != nil {
		return domain.ContactMessage{}, err
	}
	return msg, nil
}

func (r *PgContactRepository) ListAll(ctx context.Context) ([]domain.ContactMessage, error) {
	const query = `
		SELECT id, name, email, subject, message, ip_address, status, created_at, updated_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ContactMessage
	for rows.Next() {
		var msg domain.ContactMessage
		var ipAddress *string

		err = rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Subject,
			&msg.Message,
			&ipAddress,
			&msg.Status,
			&msg.CreatedAt,
			&msg.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if ipAddress != nil {
			msg.IPAddress = *ipAddress
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// Probe ejecuta una lectura acotada para verificar conectividad.
func (r *PgContactRepository) Probe(ctx context.Context) error {
	const query = `SELECT id FROM contact_messages LIMIT 1`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return err
	}
	rows.Close()
	return rows.Err()
}
