package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pbudlong/InstaGift/models"
)

// Postgres is the pgx-backed Store.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

const giftColumns = `id, business_name, business_type, brand_colors, emoji, amount,
recipient_name, COALESCE(recipient_email,''), COALESCE(recipient_phone,''), COALESCE(message,''),
COALESCE(stripe_cardholder_id,''), COALESCE(stripe_card_id,''),
COALESCE(card_number,''), COALESCE(card_expiry,''), COALESCE(card_cvv,''), created_at`

func (p *Postgres) CreateGift(ctx context.Context, g models.Gift) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO gifts(
id, business_name, business_type, brand_colors, emoji, amount,
recipient_name, recipient_email, recipient_phone, message,
stripe_cardholder_id, stripe_card_id, card_number, card_expiry, card_cvv, created_at)
VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		g.ID, g.BusinessName, g.BusinessType, g.BrandColors, g.Emoji, g.Amount,
		g.RecipientName, g.RecipientEmail, g.RecipientPhone, g.Message,
		g.StripeCardholderID, g.StripeCardID, g.CardNumber, g.CardExpiry, g.CardCvv, g.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert gift: %w", err)
	}
	return nil
}

func (p *Postgres) GetGift(ctx context.Context, id string) (models.Gift, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+giftColumns+` FROM gifts WHERE id=$1`, id)
	return scanGift(row)
}

func (p *Postgres) ListGifts(ctx context.Context) ([]models.Gift, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+giftColumns+` FROM gifts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list gifts: %w", err)
	}
	defer rows.Close()
	var out []models.Gift
	for rows.Next() {
		g, err := scanGift(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func scanGift(row pgx.Row) (models.Gift, error) {
	var g models.Gift
	err := row.Scan(&g.ID, &g.BusinessName, &g.BusinessType, &g.BrandColors, &g.Emoji, &g.Amount,
		&g.RecipientName, &g.RecipientEmail, &g.RecipientPhone, &g.Message,
		&g.StripeCardholderID, &g.StripeCardID, &g.CardNumber, &g.CardExpiry, &g.CardCvv, &g.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Gift{}, ErrNotFound
	}
	if err != nil {
		return models.Gift{}, fmt.Errorf("scan gift: %w", err)
	}
	return g, nil
}

const requestColumns = `id, COALESCE(email,''), COALESCE(phone,''), COALESCE(password,''), approved, created_at`

func (p *Postgres) CreateAccessRequest(ctx context.Context, r models.AccessRequest) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO access_requests(id, email, phone, password, approved, created_at)
VALUES($1, NULLIF($2,''), NULLIF($3,''), NULLIF($4,''), $5, $6)`,
		r.ID, r.Email, r.Phone, r.Password, r.Approved, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert access request: %w", err)
	}
	return nil
}

func (p *Postgres) GetAccessRequest(ctx context.Context, id string) (models.AccessRequest, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM access_requests WHERE id=$1`, id)
	return scanRequest(row)
}

func (p *Postgres) ListAccessRequests(ctx context.Context) ([]models.AccessRequest, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+requestColumns+` FROM access_requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list access requests: %w", err)
	}
	defer rows.Close()
	var out []models.AccessRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (p *Postgres) FindAccessRequestByEmail(ctx context.Context, email string) (models.AccessRequest, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM access_requests WHERE email=$1`, email)
	return scanRequest(row)
}

func (p *Postgres) FindAccessRequestByPhone(ctx context.Context, phone string) (models.AccessRequest, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM access_requests WHERE phone=$1`, phone)
	return scanRequest(row)
}

func (p *Postgres) ApproveAccessRequest(ctx context.Context, id, password string) error {
	tag, err := p.pool.Exec(ctx, `UPDATE access_requests SET approved=TRUE, password=$2 WHERE id=$1`, id, password)
	if err != nil {
		return fmt.Errorf("approve access request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) PasswordApproved(ctx context.Context, password string) (bool, error) {
	var ok bool
	err := p.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM access_requests WHERE approved AND password=$1)`, password).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("password lookup: %w", err)
	}
	return ok, nil
}

func scanRequest(row pgx.Row) (models.AccessRequest, error) {
	var r models.AccessRequest
	err := row.Scan(&r.ID, &r.Email, &r.Phone, &r.Password, &r.Approved, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.AccessRequest{}, ErrNotFound
	}
	if err != nil {
		return models.AccessRequest{}, fmt.Errorf("scan access request: %w", err)
	}
	return r, nil
}
