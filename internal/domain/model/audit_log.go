package model

import "time"

type AuditAction string

const (
	AuditActionCreateOrder AuditAction = "CREATE_ORDER"

	// client cancelled outright or filed a cancellation request
	AuditActionClientCancelOrder AuditAction = "CLIENT_CANCEL_ORDER"
	// admin set the status directly
	AuditActionUpdateOrderStatus AuditAction = "UPDATE_ORDER_STATUS"
	AuditActionApproveCancel     AuditAction = "APPROVE_CANCELLATION"
	AuditActionRejectCancel      AuditAction = "REJECT_CANCELLATION"

	AuditActionCreateDeliveryArea AuditAction = "CREATE_DELIVERY_AREA"
	AuditActionUpdateDeliveryArea AuditAction = "UPDATE_DELIVERY_AREA"
	AuditActionDeleteDeliveryArea AuditAction = "DELETE_DELIVERY_AREA"
)

type AuditResourceType string

const (
	AuditResourceOrder        AuditResourceType = "order"
	AuditResourceDeliveryArea AuditResourceType = "delivery_area"
)

// AuditLog records who changed what, on which resource, and the before/after state.
type AuditLog struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// user or admin that performed the action
	ActorUserID int64 `gorm:"not null;index" json:"actor_user_id"`

	Action       AuditAction       `gorm:"type:varchar(50);not null;index" json:"action"`
	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resource_type"`
	ResourceID   int64             `gorm:"not null;index" json:"resource_id"`

	// JSON documents
	BeforeJSON string `gorm:"type:text" json:"before_json"`
	AfterJSON  string `gorm:"type:text" json:"after_json"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
