// Package http exposes the ledger's boundary contract over HTTP. The
// handlers are thin: auth, routing, and rendering live outside the
// ledger subsystem, which is reached only through the mutation service.
package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jeffrey-cordero/capital/internal/audit"
	"github.com/jeffrey-cordero/capital/internal/ledger"
)

type TransactionsHandler struct {
	Svc   *ledger.Service
	Audit *audit.Recorder // optional
}

func NewTransactionsHandler(svc *ledger.Service) *TransactionsHandler {
	return &TransactionsHandler{Svc: svc}
}

type deleteBatchReq struct {
	IDs []string `json:"ids"`
}

// List returns the owner's transactions ordered by date descending.
func (h *TransactionsHandler) List(c *fiber.Ctx) error {
	ownerID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Svc.List(c.UserContext(), ownerID)
	if err != nil {
		return mapLedgerError(c, err)
	}
	if items == nil {
		items = []ledger.Transaction{}
	}
	return c.JSON(fiber.Map{"items": items})
}

// Create inserts a new transaction and returns its id.
func (h *TransactionsHandler) Create(c *fiber.Ctx) error {
	ownerID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body ledger.CreateInput
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	tx, err := h.Svc.Create(c.UserContext(), ownerID, body)
	if err != nil {
		return mapLedgerError(c, err)
	}
	h.Audit.Record(c.UserContext(), ownerID, "transaction.create", tx.ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": tx.ID})
}

// Update applies a partial update to one transaction. An empty delta
// succeeds without writing anything.
func (h *TransactionsHandler) Update(c *fiber.Ctx) error {
	ownerID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "transaction id is required")
	}

	var body ledger.UpdateInput
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Update(c.UserContext(), ownerID, id, body); err != nil {
		return mapLedgerError(c, err)
	}
	h.Audit.Record(c.UserContext(), ownerID, "transaction.update", id)
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteBatch deletes the transactions named in the request body. An
// empty id list is a validation error, never a silent no-op.
func (h *TransactionsHandler) DeleteBatch(c *fiber.Ctx) error {
	ownerID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body deleteBatchReq
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.DeleteBatch(c.UserContext(), ownerID, body.IDs); err != nil {
		return mapLedgerError(c, err)
	}
	h.Audit.Record(c.UserContext(), ownerID, "transaction.delete", body.IDs...)
	return c.SendStatus(fiber.StatusNoContent)
}

// mapLedgerError translates the ledger's error taxonomy to the wire:
// field-keyed 400 for validation, 404 for missing targets, and an
// opaque 500 for store failures (details stay in the logs).
func mapLedgerError(c *fiber.Ctx, err error) error {
	var verr *ledger.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": verr.Fields})
	}
	var nf *ledger.NotFoundError
	if errors.As(err, &nf) {
		return fiber.NewError(fiber.StatusNotFound, nf.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
}

func getUserID(c *fiber.Ctx) (string, bool) {
	if v := c.Locals("user_id"); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}
