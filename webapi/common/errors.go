package common

import (
	"errors"

	"github.com/amirasaad/causehive/pkg/domain"
	"github.com/amirasaad/causehive/pkg/domain/cart"
	"github.com/amirasaad/causehive/pkg/domain/category"
	"github.com/amirasaad/causehive/pkg/domain/cause"
	"github.com/amirasaad/causehive/pkg/domain/donation"
	"github.com/amirasaad/causehive/pkg/domain/newsletter"
	"github.com/amirasaad/causehive/pkg/domain/notification"
	"github.com/amirasaad/causehive/pkg/domain/payment"
	"github.com/amirasaad/causehive/pkg/domain/testimonial"
	"github.com/amirasaad/causehive/pkg/domain/user"
	"github.com/amirasaad/causehive/pkg/domain/withdrawal"
	provider "github.com/amirasaad/causehive/pkg/provider/payment"
	usersvc "github.com/amirasaad/causehive/pkg/service/user"
	"github.com/gofiber/fiber/v2"
)

var statusByError = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, fiber.StatusNotFound},
	{user.ErrUserNotFound, fiber.StatusNotFound},
	{category.ErrCategoryNotFound, fiber.StatusNotFound},
	{cause.ErrCauseNotFound, fiber.StatusNotFound},
	{cart.ErrCartNotFound, fiber.StatusNotFound},
	{cart.ErrCartItemNotFound, fiber.StatusNotFound},
	{payment.ErrPaymentNotFound, fiber.StatusNotFound},
	{donation.ErrDonationNotFound, fiber.StatusNotFound},
	{withdrawal.ErrWithdrawalNotFound, fiber.StatusNotFound},
	{notification.ErrNotificationNotFound, fiber.StatusNotFound},
	{testimonial.ErrTestimonialNotFound, fiber.StatusNotFound},
	{testimonial.ErrReportNotFound, fiber.StatusNotFound},
	{newsletter.ErrSubscriptionNotFound, fiber.StatusNotFound},

	{domain.ErrAlreadyExists, fiber.StatusConflict},
	{domain.ErrInvalidState, fiber.StatusConflict},
	{user.ErrEmailTaken, fiber.StatusConflict},
	{cause.ErrNameTaken, fiber.StatusConflict},
	{testimonial.ErrAlreadyReviewed, fiber.StatusConflict},
	{testimonial.ErrAlreadyReported, fiber.StatusConflict},
	{newsletter.ErrAlreadySubscribed, fiber.StatusConflict},

	{domain.ErrUnauthorized, fiber.StatusUnauthorized},
	{user.ErrUserUnauthorized, fiber.StatusUnauthorized},

	{domain.ErrForbidden, fiber.StatusForbidden},
	{user.ErrUserInactive, fiber.StatusForbidden},
	{cause.ErrNotOrganizer, fiber.StatusForbidden},

	{domain.ErrValidation, fiber.StatusBadRequest},
	{domain.ErrAmountMustBePositive, fiber.StatusBadRequest},
	{user.ErrInvalidEmail, fiber.StatusBadRequest},
	{user.ErrPasswordTooShort, fiber.StatusBadRequest},
	{user.ErrPasswordTooLong, fiber.StatusBadRequest},
	{user.ErrInvalidResetToken, fiber.StatusBadRequest},
	{user.ErrIncompleteWithdrawalInfo, fiber.StatusBadRequest},
	{user.ErrInvalidWithdrawalMethod, fiber.StatusBadRequest},
	{usersvc.ErrUnsupportedCountry, fiber.StatusBadRequest},
	{category.ErrNameRequired, fiber.StatusBadRequest},
	{cause.ErrNameRequired, fiber.StatusBadRequest},
	{cause.ErrTargetMustBePositive, fiber.StatusBadRequest},
	{cause.ErrNotAcceptingDonations, fiber.StatusBadRequest},
	{cause.ErrRejectionReasonRequired, fiber.StatusBadRequest},
	{cart.ErrCartEmpty, fiber.StatusBadRequest},
	{cart.ErrCartNotActive, fiber.StatusBadRequest},
	{cart.ErrCartIDRequired, fiber.StatusBadRequest},
	{cart.ErrInvalidQuantity, fiber.StatusBadRequest},
	{payment.ErrEmailRequired, fiber.StatusBadRequest},
	{withdrawal.ErrInsufficientFunds, fiber.StatusBadRequest},
	{withdrawal.ErrNotRetryable, fiber.StatusBadRequest},
	{withdrawal.ErrNotCancellable, fiber.StatusBadRequest},
	{testimonial.ErrInvalidRating, fiber.StatusBadRequest},
	{testimonial.ErrReviewTooLong, fiber.StatusBadRequest},
	{testimonial.ErrReviewRequired, fiber.StatusBadRequest},
	{testimonial.ErrInvalidReason, fiber.StatusBadRequest},
	{newsletter.ErrInvalidEmail, fiber.StatusBadRequest},
	{provider.ErrInvalidSignature, fiber.StatusBadRequest},

	{provider.ErrUnsupported, fiber.StatusNotImplemented},
	{provider.ErrGateway, fiber.StatusBadGateway},
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return fiber.StatusInternalServerError
}
