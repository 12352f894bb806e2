// File: internal/service/authorize.go
package service

import "find-my-stuff/internal/model"

// ItemAction 表示對物品的操作種類
type ItemAction string

const (
	ActionViewItem     ItemAction = "view"
	ActionEditItem     ItemAction = "edit"
	ActionDeleteItem   ItemAction = "delete"
	ActionClaimItem    ItemAction = "claim"
	ActionModerateItem ItemAction = "moderate"
)

// AuthorizeItem 集中判斷 actor 是否可對物品執行 action
// 規則：
//   - view：已核准物品人人可見；未核准僅限擁有者與管理員
//   - edit / delete：擁有者或管理員
//   - claim：僅限擁有者
//   - moderate：僅限管理員
func AuthorizeItem(claims *SessionClaims, item *model.Item, action ItemAction) bool {
	if claims == nil || item == nil {
		return false
	}
	isOwner := item.UserID == claims.UserID
	switch action {
	case ActionViewItem:
		return item.IsApproved || isOwner || claims.IsAdmin()
	case ActionEditItem, ActionDeleteItem:
		return isOwner || claims.IsAdmin()
	case ActionClaimItem:
		return isOwner
	case ActionModerateItem:
		return claims.IsAdmin()
	}
	return false
}

// AuthorizeNotification 僅允許收件者本人操作通知
func AuthorizeNotification(claims *SessionClaims, n *model.Notification) bool {
	if claims == nil || n == nil {
		return false
	}
	return n.UserID == claims.UserID
}
