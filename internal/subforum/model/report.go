package models

import (
	"time"

	"github.com/google/uuid"

	identity "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
)

type ReportReason string

const (
	ReasonSpam          ReportReason = "spam"
	ReasonHarassment    ReportReason = "harassment"
	ReasonInappropriate ReportReason = "inappropriate_content"
	ReasonMisinfo       ReportReason = "misinformation"
	ReasonOther         ReportReason = "other"
)

func ValidReportReason(r ReportReason) bool {
	switch r {
	case ReasonSpam, ReasonHarassment, ReasonInappropriate, ReasonMisinfo, ReasonOther:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportReviewed  ReportStatus = "reviewed"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

type SubforumReport struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	SubforumID uuid.UUID `bun:",notnull,type:uuid"`
	Subforum   *Subforum `bun:"rel:belongs-to,join:subforum_id=id"`

	ReporterID uuid.UUID      `bun:",notnull,type:uuid"`
	Reporter   *identity.User `bun:"rel:belongs-to,join:reporter_id=id"`

	Reason  ReportReason `bun:",notnull"`
	Details string       `bun:",nullzero"`

	// At most one pending report per (subforum, reporter); the usecase
	// rejects a second one until the first is reviewed.
	Status ReportStatus `bun:",notnull,default:'pending'"`

	ReviewedByID *uuid.UUID     `bun:",nullzero,type:uuid"`
	ReviewedBy   *identity.User `bun:"rel:belongs-to,join:reviewed_by_id=id"`
	ReviewedAt   *time.Time     `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
