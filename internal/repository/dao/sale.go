package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrSaleNotFound      = errors.New("sale not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Sale struct {
	ID uint `gorm:"primaryKey"`

	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethod string          `gorm:"not null;default:Cash"`
	ReferenceNo   *string

	CreatedAt time.Time `gorm:"not null"`

	Items []SaleItem `gorm:"foreignKey:SaleID"`
}

type SaleItem struct {
	ID uint `gorm:"primaryKey"`

	SaleID    uint            `gorm:"not null;index"`
	ProductID uint            `gorm:"not null"`
	Product   Product         `gorm:"foreignKey:ProductID"`
	Quantity  int             `gorm:"not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// SaleSummary is a sale header scanned together with the summed quantity of
// its items.
type SaleSummary struct {
	ID            uint
	Total         decimal.Decimal
	PaymentMethod string
	ReferenceNo   *string
	CreatedAt     time.Time
	TotalItems    int
}

type SaleDAO struct {
	db *gorm.DB
}

func NewSaleDAO(db *gorm.DB) *SaleDAO {
	return &SaleDAO{
		db: db,
	}
}

// InsertSale writes the sale header, all of its items, and the matching stock
// decrements inside a single transaction. Any failure rolls the whole unit
// back; the stock decrement is conditional on stock >= quantity, so a sale can
// never drive a product's stock negative.
func (d *SaleDAO) InsertSale(ctx context.Context, sale Sale, items []SaleItem) (Sale, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].SaleID = sale.ID

			if err := tx.Create(&items[i]).Error; err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
					return fmt.Errorf("product %v: %w", items[i].ProductID, ErrProductNotFound)
				}

				return err
			}

			result := tx.Model(&Product{}).
				Where("id = ? AND stock >= ?", items[i].ProductID, items[i].Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", items[i].Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				var count int64
				if err := tx.Model(&Product{}).Where("id = ?", items[i].ProductID).Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					return fmt.Errorf("product %v: %w", items[i].ProductID, ErrProductNotFound)
				}

				return fmt.Errorf("product %v: %w", items[i].ProductID, ErrInsufficientStock)
			}
		}

		return nil
	})
	if err != nil {
		return Sale{}, err
	}

	sale.Items = items

	return sale, nil
}

func (d *SaleDAO) FindAll(ctx context.Context) ([]SaleSummary, error) {
	var summaries []SaleSummary

	result := d.db.WithContext(ctx).
		Model(&Sale{}).
		Select("sales.id, sales.total, sales.payment_method, sales.reference_no, sales.created_at, COALESCE(SUM(sale_items.quantity), 0) AS total_items").
		Joins("LEFT JOIN sale_items ON sale_items.sale_id = sales.id").
		Group("sales.id").
		Order("sales.created_at DESC").
		Scan(&summaries)
	if result.Error != nil {
		return nil, result.Error
	}

	return summaries, nil
}

func (d *SaleDAO) FindByID(ctx context.Context, id uint) (Sale, error) {
	var sale Sale

	result := d.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		First(&sale, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Sale{}, ErrSaleNotFound
		}

		return Sale{}, result.Error
	}

	return sale, nil
}
