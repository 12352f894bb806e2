// File: internal/model/item.go
package model

import "time"

// ItemStatus 物品狀態，儲存字串需與既有資料相容
type ItemStatus string

const (
	StatusFound   ItemStatus = "Found"
	StatusClaimed ItemStatus = "Claimed"
)

type Item struct {
	ID               int        `db:"id" json:"id"`
	Name             string     `db:"name" json:"name"`
	Description      string     `db:"description" json:"description"`
	Category         string     `db:"category" json:"category"`
	DateLost         *time.Time `db:"date_lost" json:"date_lost,omitempty"`
	PictureURL       string     `db:"picture_url" json:"picture_url"`
	UserID           int        `db:"user_id" json:"user_id"`
	Status           string     `db:"status" json:"status"`
	ContactEmail     string     `db:"contact_email" json:"contact_email"`
	ContactPhone     string     `db:"contact_phone" json:"contact_phone"`
	IsApproved       bool       `db:"is_approved" json:"is_approved"`
	ItemLocation     string     `db:"item_location" json:"item_location"`
	UploaderLocation string     `db:"uploader_location" json:"uploader_location"`
}

// ItemWithOwner 列表查詢結果，附帶擁有者顯示名稱
type ItemWithOwner struct {
	Item
	OwnerUsername string `db:"owner_username" json:"owner_username"`
}
