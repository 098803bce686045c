package contracts

import "github.com/Alex2003763/Fintracker-sub002/internal/domain/report"

type ReportPreviewResponse struct {
	Data     *report.Data     `json:"data"`
	Metadata *report.Metadata `json:"metadata"`
}
