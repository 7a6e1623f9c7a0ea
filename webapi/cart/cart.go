package cart

import (
	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/middleware"
	cartsvc "github.com/amirasaad/causehive/pkg/service/cart"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers cart routes. All but /cart/new accept anonymous callers.
func Routes(app *fiber.App, cartSvc *cartsvc.Service, cfg *config.App) {
	optional := middleware.OptionalJwt(cfg.Auth.Jwt)

	app.Get("/cart", optional, GetCart(cartSvc))
	app.Delete("/cart", optional, DeleteCart(cartSvc))
	app.Post("/cart/new", middleware.JwtProtected(cfg.Auth.Jwt), NewCart(cartSvc))
	app.Post("/cart/items", optional, AddItem(cartSvc))
	app.Patch("/cart/items/:id", optional, UpdateItem(cartSvc))
	app.Delete("/cart/items/:id", optional, RemoveItem(cartSvc))
}

// ref builds a cart reference from the caller and an optional cart_id query.
func ref(c *fiber.Ctx, cartID *uuid.UUID) (cartsvc.Ref, error) {
	r := cartsvc.Ref{CartID: cartID}
	if actor := middleware.Actor(c); actor != nil {
		r.UserID = &actor.UserID
	}
	if r.CartID == nil {
		id, err := common.UUIDQuery(c, "cart_id")
		if err != nil {
			return r, err
		}
		r.CartID = id
	}
	return r, nil
}

// GetCart returns the caller's active cart or the anonymous cart named by cart_id.
// @Summary Get cart
// @Tags cart
// @Produce json
// @Param cart_id query string false "Cart ID (required for anonymous callers)"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /cart [get]
func GetCart(cartSvc *cartsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := ref(c, nil)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid cart_id", err)
		}
		found, err := cartSvc.GetCart(c.Context(), r)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Cart not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cart fetched", toCartDTO(found))
	}
}

// NewCart abandons the caller's active cart and starts a new one.
// @Summary Start a new cart
// @Tags cart
// @Produce json
// @Success 201 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /cart/new [post]
// @Security Bearer
func NewCart(cartSvc *cartsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		created, err := cartSvc.CreateUserCart(c.Context(), actor.UserID)
		if err != nil {
			log.Errorf("Failed to create cart: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create cart", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Cart created", toCartDTO(created))
	}
}

// AddItem adds a donation line. Anonymous callers without a cart_id get a new cart.
// @Summary Add to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body AddItemRequest true "Item"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /cart/items [post]
func AddItem(cartSvc *cartsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AddItemRequest](c)
		if input == nil {
			return err
		}
		r, err := ref(c, input.CartID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid cart_id", err)
		}
		updated, item, err := cartSvc.AddToCart(c.Context(), r, input.CauseID, input.DonationAmount, input.Quantity)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to add to cart", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Item added to cart", &AddItemResponse{
			Cart: toCartDTO(updated),
			Item: toItemDTO(item),
		})
	}
}

// UpdateItem changes a line's amount or quantity.
// @Summary Update cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param cart_id query string false "Cart ID (required for anonymous callers)"
// @Param request body UpdateItemRequest true "Changes"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /cart/items/{id} [patch]
func UpdateItem(cartSvc *cartsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[UpdateItemRequest](c)
		if input == nil {
			return err
		}
		r, err := ref(c, nil)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid cart_id", err)
		}
		updated, err := cartSvc.UpdateItem(c.Context(), r, itemID, input.DonationAmount, input.Quantity)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update cart item", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cart updated", toCartDTO(updated))
	}
}

// RemoveItem deletes a line.
// @Summary Remove cart item
// @Tags cart
// @Produce json
// @Param id path string true "Item ID"
// @Param cart_id query string false "Cart ID (required for anonymous callers)"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /cart/items/{id} [delete]
func RemoveItem(cartSvc *cartsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		r, err := ref(c, nil)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid cart_id", err)
		}
		updated, err := cartSvc.RemoveItem(c.Context(), r, itemID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to remove cart item", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Item removed", toCartDTO(updated))
	}
}

// DeleteCart discards a cart that has not been checked out.
// @Summary Delete cart
// @Tags cart
// @Param cart_id query string false "Cart ID (required for anonymous callers)"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /cart [delete]
func DeleteCart(cartSvc *cartsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := ref(c, nil)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid cart_id", err)
		}
		if err := cartSvc.DeleteCart(c.Context(), r); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete cart", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
