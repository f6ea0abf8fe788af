package gerr

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	InvalidPeriodAnchor  = status.Error(codes.InvalidArgument, "invalid period anchor")
	InvalidReportRequest = status.Error(codes.InvalidArgument, "invalid report request")
	DataFetchFailure     = status.Error(codes.Unavailable, "report data fetch failed")
	NoDataForPeriod      = status.Error(codes.NotFound, "no data for period")

	BadMailRequest       = status.Error(codes.DataLoss, "bad mail request")
	MailApiLimitReached  = status.Error(codes.ResourceExhausted, "mail api limit reached")
	ArchiveNotConfigured = status.Error(codes.FailedPrecondition, "report archive is not configured")
)
