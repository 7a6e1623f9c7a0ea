package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amirasaad/causehive/infra/repository/analytics"
	"github.com/amirasaad/causehive/infra/repository/cart"
	"github.com/amirasaad/causehive/infra/repository/category"
	"github.com/amirasaad/causehive/infra/repository/cause"
	"github.com/amirasaad/causehive/infra/repository/common"
	"github.com/amirasaad/causehive/infra/repository/donation"
	"github.com/amirasaad/causehive/infra/repository/newsletter"
	"github.com/amirasaad/causehive/infra/repository/notification"
	"github.com/amirasaad/causehive/infra/repository/payment"
	"github.com/amirasaad/causehive/infra/repository/testimonial"
	"github.com/amirasaad/causehive/infra/repository/user"
	"github.com/amirasaad/causehive/infra/repository/withdrawal"
	"github.com/amirasaad/causehive/pkg/repository"
	analyticsrepo "github.com/amirasaad/causehive/pkg/repository/analytics"
	cartrepo "github.com/amirasaad/causehive/pkg/repository/cart"
	categoryrepo "github.com/amirasaad/causehive/pkg/repository/category"
	causerepo "github.com/amirasaad/causehive/pkg/repository/cause"
	donationrepo "github.com/amirasaad/causehive/pkg/repository/donation"
	newsletterrepo "github.com/amirasaad/causehive/pkg/repository/newsletter"
	notificationrepo "github.com/amirasaad/causehive/pkg/repository/notification"
	paymentrepo "github.com/amirasaad/causehive/pkg/repository/payment"
	testimonialrepo "github.com/amirasaad/causehive/pkg/repository/testimonial"
	userrepo "github.com/amirasaad/causehive/pkg/repository/user"
	withdrawalrepo "github.com/amirasaad/causehive/pkg/repository/withdrawal"
	"gorm.io/gorm"
)

type constructor func(*gorm.DB) any

func register[R any](registry map[reflect.Type]constructor, fn func(*gorm.DB) R) {
	registry[reflect.TypeOf((*R)(nil))] = func(db *gorm.DB) any { return fn(db) }
}

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories obtained inside Do share the transaction session.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]constructor
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	registry := make(map[reflect.Type]constructor)
	register[userrepo.Repository](registry, user.New)
	register[categoryrepo.Repository](registry, category.New)
	register[causerepo.Repository](registry, cause.New)
	register[cartrepo.Repository](registry, cart.New)
	register[donationrepo.Repository](registry, donation.New)
	register[paymentrepo.Repository](registry, payment.New)
	register[withdrawalrepo.Repository](registry, withdrawal.New)
	register[notificationrepo.Repository](registry, notification.New)
	register[testimonialrepo.Repository](registry, testimonial.New)
	register[newsletterrepo.Repository](registry, newsletter.New)
	register[analyticsrepo.Repository](registry, analytics.New)
	return &UoW{db: db, repoRegistry: registry}
}

// Do runs fn in a transaction boundary. Errors escaping fn are mapped to
// domain errors after rollback.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
	return common.MapGormErrorToDomain(err)
}

// GetRepository returns the repository registered for repoType, a nil
// pointer to the repository interface. Outside Do the repository uses the
// base session.
func (u *UoW) GetRepository(repoType any) (any, error) {
	constructor, ok := u.repoRegistry[reflect.TypeOf(repoType)]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %T", repoType)
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return constructor(session), nil
}

var _ repository.UnitOfWork = (*UoW)(nil)

// AutoMigrate creates or alters tables from the GORM models. Production
// schemas are managed by the SQL migrations.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&user.Profile{},
		&category.Category{},
		&cause.Cause{},
		&cart.Cart{},
		&cart.Item{},
		&payment.Transaction{},
		&donation.Donation{},
		&withdrawal.Request{},
		&notification.Notification{},
		&testimonial.Testimonial{},
		&testimonial.Like{},
		&testimonial.Report{},
		&newsletter.Subscription{},
	)
}
