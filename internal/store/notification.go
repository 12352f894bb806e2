// File: internal/store/notification.go
package store

import (
	"context"
	"fmt"

	"find-my-stuff/internal/database"
	"find-my-stuff/internal/model"
)

func CreateNotification(ctx context.Context, db database.DB, userID int, message string) (*model.Notification, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO notifications (user_id, message)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		userID,
		message,
	)
	n := &model.Notification{UserID: userID, Message: message}
	if err := row.Scan(&n.ID, &n.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateNotification: %w", err)
	}
	return n, nil
}

func GetNotificationByID(ctx context.Context, db database.DB, notificationID int) (*model.Notification, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, message, is_read, created_at
		 FROM notifications WHERE id = $1`,
		notificationID,
	)
	n := &model.Notification{}
	if err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Message,
		&n.IsRead,
		&n.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetNotificationByID: %w", err)
	}
	return n, nil
}

func ListNotificationsByUser(ctx context.Context, db database.DB, userID int) ([]model.Notification, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, message, is_read, created_at
		 FROM notifications
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListNotificationsByUser: %w", err)
	}
	defer rows.Close()

	var list []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Message,
			&n.IsRead,
			&n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListNotificationsByUser: %w", err)
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListNotificationsByUser: %w", err)
	}
	return list, nil
}

func MarkNotificationRead(ctx context.Context, db database.DB, notificationID int) error {
	_, err := db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1`,
		notificationID,
	)
	if err != nil {
		return fmt.Errorf("MarkNotificationRead: %w", err)
	}
	return nil
}

func MarkAllNotificationsRead(ctx context.Context, db database.DB, userID int) error {
	_, err := db.Exec(ctx,
		`UPDATE notifications
		 SET is_read = TRUE
		 WHERE user_id = $1 AND is_read = FALSE`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("MarkAllNotificationsRead: %w", err)
	}
	return nil
}

func CountUnreadNotifications(ctx context.Context, db database.DB, userID int) (int, error) {
	row := db.QueryRow(ctx,
		`SELECT COUNT(*)
		 FROM notifications
		 WHERE user_id = $1 AND is_read = FALSE`,
		userID,
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("CountUnreadNotifications: %w", err)
	}
	return n, nil
}
