package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"warung-pos/internal/domain"
)

// OrderStore persists orders and line items in Postgres. Each mutating
// method runs as one transaction: the item mutation and the total
// recalculation commit or roll back together, and the order row is locked
// while the unit of work runs so racing operations serialize.
type OrderStore struct {
	DB *sql.DB
}

func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{DB: db}
}

const orderColumns = `id, uuid, customer_name, status, total_amount, COALESCE(payment_method, ''), created_at, paid_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*domain.Order, error) {
	var order domain.Order
	var paidAt sql.NullTime
	err := row.Scan(&order.ID, &order.UUID, &order.CustomerName, &order.Status,
		&order.TotalAmount, &order.PaymentMethod, &order.CreatedAt, &paidAt)
	if err != nil {
		return nil, err
	}
	if paidAt.Valid {
		order.PaidAt = &paidAt.Time
	}
	return &order, nil
}

func (s *OrderStore) loadItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, order_id, menu_id, menu_name, quantity, price, subtotal, status, is_printed, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuID, &item.MenuName,
			&item.Quantity, &item.Price, &item.Subtotal, &item.Status, &item.IsPrinted, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *OrderStore) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	order, err := scanOrder(s.DB.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	order.Items, err = s.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderStore) GetOrderByUUID(ctx context.Context, uuid string) (*domain.Order, error) {
	order, err := scanOrder(s.DB.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE uuid = $1`, uuid))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	order.Items, err = s.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderStore) GetItem(ctx context.Context, itemID int) (*domain.OrderItem, error) {
	var item domain.OrderItem
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, order_id, menu_id, menu_name, quantity, price, subtotal, status, is_printed, created_at
		FROM order_items
		WHERE id = $1
	`, itemID).Scan(&item.ID, &item.OrderID, &item.MenuID, &item.MenuName,
		&item.Quantity, &item.Price, &item.Subtotal, &item.Status, &item.IsPrinted, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// lockOrderStatus reads the order status under a row lock so the rest of the
// unit of work sees a stable state.
func lockOrderStatus(ctx context.Context, tx *sql.Tx, orderID int) (string, error) {
	var status string
	err := tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, orderID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrOrderNotFound
	}
	return status, err
}

// recalculateTotal re-derives total_amount from active items inside the
// running transaction.
func recalculateTotal(ctx context.Context, tx *sql.Tx, orderID int) (int, error) {
	var total int
	err := tx.QueryRowContext(ctx, `
		UPDATE orders
		SET total_amount = (
			SELECT COALESCE(SUM(subtotal), 0)
			FROM order_items
			WHERE order_id = $1 AND status = 'active'
		)
		WHERE id = $1
		RETURNING total_amount
	`, orderID).Scan(&total)
	return total, err
}

func insertItem(ctx context.Context, tx *sql.Tx, orderID int, item *domain.OrderItem) error {
	item.OrderID = orderID
	return tx.QueryRowContext(ctx, `
		INSERT INTO order_items (order_id, menu_id, menu_name, quantity, price, subtotal, status, is_printed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, orderID, item.MenuID, item.MenuName, item.Quantity, item.Price, item.Subtotal,
		item.Status, item.IsPrinted).Scan(&item.ID, &item.CreatedAt)
}

func (s *OrderStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (uuid, customer_name, status, total_amount, created_at)
		VALUES ($1, $2, $3, 0, $4)
		RETURNING id
	`, order.UUID, order.CustomerName, order.Status, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range order.Items {
		if err := insertItem(ctx, tx, order.ID, &order.Items[i]); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	total, err := recalculateTotal(ctx, tx, order.ID)
	if err != nil {
		return fmt.Errorf("recalculate total: %w", err)
	}
	order.TotalAmount = total

	return tx.Commit()
}

func (s *OrderStore) AppendItems(ctx context.Context, orderID int, items []domain.OrderItem) (int, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	status, err := lockOrderStatus(ctx, tx, orderID)
	if err != nil {
		return 0, err
	}
	if status != domain.StatusUnpaid {
		return 0, domain.ClosedOrderError(status)
	}

	for i := range items {
		if err := insertItem(ctx, tx, orderID, &items[i]); err != nil {
			return 0, fmt.Errorf("insert order item: %w", err)
		}
	}

	total, err := recalculateTotal(ctx, tx, orderID)
	if err != nil {
		return 0, fmt.Errorf("recalculate total: %w", err)
	}

	return total, tx.Commit()
}

func (s *OrderStore) VoidItems(ctx context.Context, orderID int, itemIDs []int) (int, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	status, err := lockOrderStatus(ctx, tx, orderID)
	if err != nil {
		return 0, err
	}
	if status != domain.StatusUnpaid {
		return 0, domain.ClosedOrderError(status)
	}

	for _, itemID := range itemIDs {
		result, err := tx.ExecContext(ctx, `
			UPDATE order_items
			SET status = 'void'
			WHERE id = $1 AND order_id = $2 AND status = 'active'
		`, itemID, orderID)
		if err != nil {
			return 0, err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}
		if affected == 0 {
			return 0, domain.ErrItemVoided
		}
	}

	total, err := recalculateTotal(ctx, tx, orderID)
	if err != nil {
		return 0, fmt.Errorf("recalculate total: %w", err)
	}

	return total, tx.Commit()
}

// MarkPaid settles the order. The row is locked and both the status and the
// total are re-checked: a total that drifted from expectedTotal means items
// were added or voided after the cashier quoted the amount, and the payment
// is rejected with ErrOrderChanged.
func (s *OrderStore) MarkPaid(ctx context.Context, orderID int, method string, expectedTotal int, paidAt time.Time) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status string
	var total int
	err = tx.QueryRowContext(ctx,
		`SELECT status, total_amount FROM orders WHERE id = $1 FOR UPDATE`, orderID).Scan(&status, &total)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	if status != domain.StatusUnpaid {
		return domain.ClosedOrderError(status)
	}
	if total != expectedTotal {
		return domain.ErrOrderChanged
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = 'paid', payment_method = $2, paid_at = $3
		WHERE id = $1
	`, orderID, method, paidAt); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE order_items SET is_printed = TRUE WHERE order_id = $1
	`, orderID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *OrderStore) MarkCancelled(ctx context.Context, orderID int) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	status, err := lockOrderStatus(ctx, tx, orderID)
	if err != nil {
		return err
	}
	if status != domain.StatusUnpaid {
		return domain.ClosedOrderError(status)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE orders SET status = 'cancelled' WHERE id = $1
	`, orderID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *OrderStore) UnpaidToday(ctx context.Context) ([]domain.Order, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = 'unpaid' AND created_at::date = CURRENT_DATE
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := s.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (s *OrderStore) SaveQRCode(ctx context.Context, orderID int, qr []byte) error {
	_, err := s.DB.ExecContext(ctx, `UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (s *OrderStore) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	var qr []byte
	err := s.DB.QueryRowContext(ctx, `SELECT qr_code FROM orders WHERE id = $1`, orderID).Scan(&qr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return qr, nil
}
