package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/gemstore/analytics-manager/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:generate mockery --with-expecter --case underscore --name "Orders|Users|Products|Repository|Analytics|FileStore|Mailer|Sender" --output=./mocks
type (
	Orders interface {
		// ListOrders returns every order with its line items and guest contact.
		ListOrders(ctx context.Context) ([]entity.OrderRecord, error)
	}

	Users interface {
		// ListUsers returns the accounts having the given role.
		ListUsers(ctx context.Context, role entity.UserRole) ([]entity.User, error)
	}

	Products interface {
		// ListProducts returns the full product catalog.
		ListProducts(ctx context.Context) ([]entity.Product, error)
	}

	Repository interface {
		Orders() Orders
		Users() Users
		Products() Products
		Ping(ctx context.Context) error
		Close()
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// Analytics computes reports and order exports.
	Analytics interface {
		Compute(ctx context.Context, req entity.ReportRequest) (*entity.Report, error)
		Export(ctx context.Context, req entity.ReportRequest) (*entity.ReportExport, error)
		// ComputeWithExport returns the report and its export from one fetch.
		// The export is nil when the period has no orders.
		ComputeWithExport(ctx context.Context, req entity.ReportRequest) (*entity.Report, *entity.ReportExport, error)
	}

	FileStore interface {
		// UploadReport stores an export and returns its public URL.
		UploadReport(ctx context.Context, export *entity.ReportExport) (string, error)
		// ListReports returns archived exports, newest first.
		ListReports(ctx context.Context) ([]entity.ArchivedReport, error)
		// PruneReports removes archived exports last modified before the
		// given time and returns how many were removed.
		PruneReports(ctx context.Context, before time.Time) (int, error)
	}

	Mailer interface {
		// SendReport mails a rendered report; export may be nil.
		SendReport(ctx context.Context, to []string, rep *entity.Report, export *entity.ReportExport) error
	}

	// Sender is the part of the sendgrid client used by the mailer.
	Sender interface {
		SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
	}
)
