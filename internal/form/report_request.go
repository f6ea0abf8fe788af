package form

import (
	"regexp"
	"strings"

	"github.com/gemstore/analytics-manager/internal/entity"
	v "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	anchorRegex = regexp.MustCompile(`^\d{4}(-\d{2}(-\d{2})?)?$`)
	dayRegex    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ReportRequest holds the query parameters of report and export requests.
type ReportRequest struct {
	Kind      string `json:"kind"`
	Anchor    string `json:"anchor"`
	EndAnchor string `json:"end"`
}

func (r *ReportRequest) Validate() error {
	r.Kind = strings.ToLower(strings.TrimSpace(r.Kind))
	r.Anchor = strings.TrimSpace(r.Anchor)
	r.EndAnchor = strings.TrimSpace(r.EndAnchor)

	kinds := make([]interface{}, 0, len(entity.ValidReportKinds))
	for _, k := range []entity.ReportKind{entity.ReportDaily, entity.ReportMonthly, entity.ReportYearly, entity.ReportCustom} {
		kinds = append(kinds, string(k))
	}

	return ValidateStruct(r,
		v.Field(&r.Kind, v.Required, v.In(kinds...)),
		v.Field(&r.Anchor, v.Length(4, 10), v.Match(anchorRegex)),
		v.Field(&r.EndAnchor,
			v.When(r.Kind == string(entity.ReportCustom), v.Match(dayRegex)).
				Else(v.Empty.Error("is only allowed for custom reports")),
		),
	)
}

// ToEntity returns the validated request for the report service.
func (r *ReportRequest) ToEntity() entity.ReportRequest {
	return entity.ReportRequest{
		Kind:      entity.ReportKind(r.Kind),
		Anchor:    r.Anchor,
		EndAnchor: r.EndAnchor,
	}
}
