package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"

	"github.com/google/uuid"
)

type deliveryRepository struct {
	db *sql.DB
}

func NewDeliveryRepository(db *sql.DB) repository.DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) Create(ctx context.Context, d *domain.Delivery) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.CreatedAt = time.Now()
	query := `INSERT INTO deliveries (id, rental_id, technician_id, client_id, act_document_url, client_signature_url, visual_observations, technical_observations, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := querier(ctx, r.db).ExecContext(ctx, query, d.ID, d.RentalID, d.TechnicianID, d.ClientID, d.ActDocumentURL, d.ClientSignatureURL, d.VisualObservations, d.TechnicalObservations, d.Status, d.CreatedAt)
	return err
}

const deliverySelect = `SELECT d.id, d.rental_id, d.technician_id, d.client_id, COALESCE(d.act_document_url, ''), COALESCE(d.client_signature_url, ''),
       COALESCE(d.visual_observations, ''), COALESCE(d.technical_observations, ''), d.status, d.created_at,
       t.full_name, c.full_name
FROM deliveries d
LEFT JOIN users t ON t.id = d.technician_id
LEFT JOIN users c ON c.id = d.client_id`

func scanDelivery(scan func(dest ...any) error) (*domain.Delivery, error) {
	d := &domain.Delivery{}
	var technicianName, clientName sql.NullString
	err := scan(&d.ID, &d.RentalID, &d.TechnicianID, &d.ClientID, &d.ActDocumentURL, &d.ClientSignatureURL,
		&d.VisualObservations, &d.TechnicalObservations, &d.Status, &d.CreatedAt, &technicianName, &clientName)
	if err != nil {
		return nil, err
	}
	if technicianName.Valid {
		d.Technician = &domain.User{ID: d.TechnicianID, FullName: technicianName.String}
	}
	if clientName.Valid {
		d.Client = &domain.User{ID: d.ClientID, FullName: clientName.String}
	}
	return d, nil
}

func (r *deliveryRepository) GetByID(ctx context.Context, id string) (*domain.Delivery, error) {
	row := querier(ctx, r.db).QueryRowContext(ctx, deliverySelect+` WHERE d.id = $1`, id)
	d, err := scanDelivery(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("delivery not found")
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *deliveryRepository) List(ctx context.Context) ([]domain.Delivery, error) {
	rows, err := querier(ctx, r.db).QueryContext(ctx, deliverySelect+` ORDER BY d.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deliveries []domain.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows.Scan)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, *d)
	}
	return deliveries, rows.Err()
}

func (r *deliveryRepository) Update(ctx context.Context, d *domain.Delivery) error {
	query := `UPDATE deliveries SET act_document_url=$1, client_signature_url=$2, visual_observations=$3, technical_observations=$4, status=$5 WHERE id=$6`
	_, err := querier(ctx, r.db).ExecContext(ctx, query, d.ActDocumentURL, d.ClientSignatureURL, d.VisualObservations, d.TechnicalObservations, d.Status, d.ID)
	return err
}

func (r *deliveryRepository) Delete(ctx context.Context, id string) error {
	_, err := querier(ctx, r.db).ExecContext(ctx, `DELETE FROM deliveries WHERE id = $1`, id)
	return err
}
