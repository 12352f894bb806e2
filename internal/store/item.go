// File: internal/store/item.go
package store

import (
	"context"
	"fmt"
	"strings"

	"find-my-stuff/internal/database"
	"find-my-stuff/internal/model"
)

const itemColumns = `id, name, description, category, date_lost, picture_url,
	 user_id, status, contact_email, contact_phone, is_approved,
	 item_location, uploader_location`

func scanItem(row interface{ Scan(dest ...any) error }, it *model.Item) error {
	return row.Scan(
		&it.ID,
		&it.Name,
		&it.Description,
		&it.Category,
		&it.DateLost,
		&it.PictureURL,
		&it.UserID,
		&it.Status,
		&it.ContactEmail,
		&it.ContactPhone,
		&it.IsApproved,
		&it.ItemLocation,
		&it.UploaderLocation,
	)
}

func CreateItem(ctx context.Context, db database.DB, it *model.Item) (*model.Item, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO items (name, description, category, date_lost, picture_url,
		 user_id, status, contact_email, contact_phone, is_approved,
		 item_location, uploader_location)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		it.Name,
		it.Description,
		it.Category,
		it.DateLost,
		it.PictureURL,
		it.UserID,
		it.Status,
		it.ContactEmail,
		it.ContactPhone,
		it.IsApproved,
		it.ItemLocation,
		it.UploaderLocation,
	)
	if err := row.Scan(&it.ID); err != nil {
		return nil, fmt.Errorf("CreateItem: %w", err)
	}
	return it, nil
}

func GetItemByID(ctx context.Context, db database.DB, itemID int) (*model.Item, error) {
	row := db.QueryRow(ctx,
		`SELECT `+itemColumns+`
		 FROM items WHERE id = $1`,
		itemID,
	)
	it := &model.Item{}
	if err := scanItem(row, it); err != nil {
		return nil, fmt.Errorf("GetItemByID: %w", err)
	}
	return it, nil
}

func GetItemWithOwner(ctx context.Context, db database.DB, itemID int) (*model.ItemWithOwner, error) {
	row := db.QueryRow(ctx,
		`SELECT i.id, i.name, i.description, i.category, i.date_lost,
		 i.picture_url, i.user_id, i.status, i.contact_email, i.contact_phone,
		 i.is_approved, i.item_location, i.uploader_location, u.username
		 FROM items i JOIN users u ON u.id = i.user_id
		 WHERE i.id = $1`,
		itemID,
	)
	it := &model.ItemWithOwner{}
	if err := row.Scan(
		&it.ID,
		&it.Name,
		&it.Description,
		&it.Category,
		&it.DateLost,
		&it.PictureURL,
		&it.UserID,
		&it.Status,
		&it.ContactEmail,
		&it.ContactPhone,
		&it.IsApproved,
		&it.ItemLocation,
		&it.UploaderLocation,
		&it.OwnerUsername,
	); err != nil {
		return nil, fmt.Errorf("GetItemWithOwner: %w", err)
	}
	return it, nil
}

func UpdateItem(ctx context.Context, db database.DB, it *model.Item) error {
	_, err := db.Exec(ctx,
		`UPDATE items
		 SET name = $1, description = $2, category = $3, status = $4,
		     picture_url = $5, item_location = $6, uploader_location = $7
		 WHERE id = $8`,
		it.Name,
		it.Description,
		it.Category,
		it.Status,
		it.PictureURL,
		it.ItemLocation,
		it.UploaderLocation,
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateItem: %w", err)
	}
	return nil
}

func SetItemApproved(ctx context.Context, db database.DB, itemID int, approved bool) error {
	_, err := db.Exec(ctx,
		`UPDATE items SET is_approved = $1 WHERE id = $2`,
		approved,
		itemID,
	)
	if err != nil {
		return fmt.Errorf("SetItemApproved: %w", err)
	}
	return nil
}

func SetItemStatus(ctx context.Context, db database.DB, itemID int, status model.ItemStatus) error {
	_, err := db.Exec(ctx,
		`UPDATE items SET status = $1 WHERE id = $2`,
		string(status),
		itemID,
	)
	if err != nil {
		return fmt.Errorf("SetItemStatus: %w", err)
	}
	return nil
}

func DeleteItem(ctx context.Context, db database.DB, itemID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM items WHERE id = $1`,
		itemID,
	)
	if err != nil {
		return fmt.Errorf("DeleteItem: %w", err)
	}
	return nil
}

// DeleteAllPending 一次刪除所有待審核物品，回傳刪除筆數
func DeleteAllPending(ctx context.Context, db database.DB) (int, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM items WHERE is_approved = FALSE`,
	)
	if err != nil {
		return 0, fmt.Errorf("DeleteAllPending: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func CountPendingItems(ctx context.Context, db database.DB) (int, error) {
	row := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM items WHERE is_approved = FALSE`,
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("CountPendingItems: %w", err)
	}
	return n, nil
}

// ListItemsParams 為儀表板列表查詢的全部輸入
type ListItemsParams struct {
	Status        string
	Category      string
	Search        string
	UserFilter    string
	SortBy        string
	ViewerID      int
	ViewerIsAdmin bool
}

// buildListQuery 以明確的條件清單組出 WHERE 子句與位置參數
// 非管理員一律只見已核准物品；user_filter=mine 與核准條件為疊加關係
func buildListQuery(p ListItemsParams) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !p.ViewerIsAdmin {
		conds = append(conds, "i.is_approved = TRUE")
	}
	if p.UserFilter == "mine" {
		conds = append(conds, "i.user_id = "+arg(p.ViewerID))
	}
	if p.Status != "" {
		conds = append(conds, "i.status = "+arg(p.Status))
	}
	if p.Category != "" {
		conds = append(conds, "i.category = "+arg(p.Category))
	}
	if p.Search != "" {
		pattern := arg("%" + p.Search + "%")
		conds = append(conds, fmt.Sprintf(
			"(i.name ILIKE %s OR i.description ILIKE %s OR i.item_location ILIKE %s)",
			pattern, pattern, pattern,
		))
	}

	query := `SELECT i.id, i.name, i.description, i.category, i.date_lost,
	 i.picture_url, i.user_id, i.status, i.contact_email, i.contact_phone,
	 i.is_approved, i.item_location, i.uploader_location, u.username
	 FROM items i JOIN users u ON u.id = i.user_id`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY " + listOrder(p.SortBy)
	return query, args
}

func listOrder(sortBy string) string {
	switch sortBy {
	case "name_asc":
		return "i.name ASC"
	case "name_desc":
		return "i.name DESC"
	case "date_asc":
		return "i.id ASC"
	default:
		return "i.id DESC"
	}
}

func scanItemsWithOwner(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}, funcName string) ([]model.ItemWithOwner, error) {
	defer rows.Close()
	var list []model.ItemWithOwner
	for rows.Next() {
		var it model.ItemWithOwner
		if err := rows.Scan(
			&it.ID,
			&it.Name,
			&it.Description,
			&it.Category,
			&it.DateLost,
			&it.PictureURL,
			&it.UserID,
			&it.Status,
			&it.ContactEmail,
			&it.ContactPhone,
			&it.IsApproved,
			&it.ItemLocation,
			&it.UploaderLocation,
			&it.OwnerUsername,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", funcName, err)
		}
		list = append(list, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", funcName, err)
	}
	return list, nil
}

func ListItems(ctx context.Context, db database.DB, p ListItemsParams) ([]model.ItemWithOwner, error) {
	query, args := buildListQuery(p)
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListItems: %w", err)
	}
	return scanItemsWithOwner(rows, "ListItems")
}

// ListPendingItems 列出全部待審核物品，未知排序鍵預設依建立順序由舊到新
func ListPendingItems(ctx context.Context, db database.DB, sortBy string) ([]model.ItemWithOwner, error) {
	switch sortBy {
	case "name_asc", "name_desc", "date_desc":
	default:
		sortBy = "date_asc"
	}
	rows, err := db.Query(ctx,
		`SELECT i.id, i.name, i.description, i.category, i.date_lost,
		 i.picture_url, i.user_id, i.status, i.contact_email, i.contact_phone,
		 i.is_approved, i.item_location, i.uploader_location, u.username
		 FROM items i JOIN users u ON u.id = i.user_id
		 WHERE i.is_approved = FALSE
		 ORDER BY `+listOrder(sortBy),
	)
	if err != nil {
		return nil, fmt.Errorf("ListPendingItems: %w", err)
	}
	return scanItemsWithOwner(rows, "ListPendingItems")
}

func ListPendingItemsByUser(ctx context.Context, db database.DB, userID int) ([]model.ItemWithOwner, error) {
	rows, err := db.Query(ctx,
		`SELECT i.id, i.name, i.description, i.category, i.date_lost,
		 i.picture_url, i.user_id, i.status, i.contact_email, i.contact_phone,
		 i.is_approved, i.item_location, i.uploader_location, u.username
		 FROM items i JOIN users u ON u.id = i.user_id
		 WHERE i.is_approved = FALSE AND i.user_id = $1
		 ORDER BY i.id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPendingItemsByUser: %w", err)
	}
	return scanItemsWithOwner(rows, "ListPendingItemsByUser")
}
