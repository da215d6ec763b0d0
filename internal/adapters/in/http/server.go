package http

import (
	"errors"
	"net/http"

	"livraison/internal/core/application/usecases/commands"
	"livraison/internal/core/application/usecases/queries"
	"livraison/internal/core/domain/model/actor"
	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/incident"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/generated/servers"
	"livraison/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Caller identity headers. A gateway in front of this service authenticates
// the user and forwards who they are; the handlers only translate the
// headers into a domain actor.
const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"
	headerActorName = "X-Actor-Name"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases; all
// authorization decisions stay in the application layer.
type Server struct {
	// Command handlers
	createDeliveryHandler     commands.CreateDeliveryCommandHandler
	assignDriverHandler       commands.AssignDriverCommandHandler
	transitionDeliveryHandler commands.TransitionDeliveryCommandHandler
	createStockItemHandler    commands.CreateStockItemCommandHandler
	adjustStockHandler        commands.AdjustStockCommandHandler
	resolveIncidentHandler    commands.ResolveIncidentCommandHandler

	// Query handlers
	getActiveDeliveriesHandler    queries.GetActiveDeliveriesQueryHandler
	getDriverDeliveriesHandler    queries.GetDriverDeliveriesQueryHandler
	getLowStockHandler            queries.GetLowStockQueryHandler
	getUnresolvedIncidentsHandler queries.GetUnresolvedIncidentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	transitionDeliveryHandler commands.TransitionDeliveryCommandHandler,
	createStockItemHandler commands.CreateStockItemCommandHandler,
	adjustStockHandler commands.AdjustStockCommandHandler,
	resolveIncidentHandler commands.ResolveIncidentCommandHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	getDriverDeliveriesHandler queries.GetDriverDeliveriesQueryHandler,
	getLowStockHandler queries.GetLowStockQueryHandler,
	getUnresolvedIncidentsHandler queries.GetUnresolvedIncidentsQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:         createDeliveryHandler,
		assignDriverHandler:           assignDriverHandler,
		transitionDeliveryHandler:     transitionDeliveryHandler,
		createStockItemHandler:        createStockItemHandler,
		adjustStockHandler:            adjustStockHandler,
		resolveIncidentHandler:        resolveIncidentHandler,
		getActiveDeliveriesHandler:    getActiveDeliveriesHandler,
		getDriverDeliveriesHandler:    getDriverDeliveriesHandler,
		getLowStockHandler:            getLowStockHandler,
		getUnresolvedIncidentsHandler: getUnresolvedIncidentsHandler,
	}
}

// CreateDelivery handles POST /api/v1/deliveries - registers a new delivery.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	requestedBy, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.NewDelivery
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	spec, err := deliverySpecFromBody(body)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveryID := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, requestedBy, spec)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: deliveryID.Bytes()})
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active - the dispatch board.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	if _, err := actorFromHeaders(ctx); err != nil {
		return writeError(ctx, err)
	}

	query := queries.NewGetActiveDeliveriesQuery()

	summaries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliverySummaries(summaries))
}

// GetMyDeliveries handles GET /api/v1/deliveries/mine - the calling driver's run.
func (s *Server) GetMyDeliveries(ctx echo.Context) error {
	requestedBy, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDriverDeliveriesQuery(requestedBy.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.getDriverDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliverySummaries(summaries))
}

// AssignDriver handles POST /api/v1/deliveries/{deliveryId}/assign.
func (s *Server) AssignDriver(ctx echo.Context, deliveryId openapi_types.UUID) error {
	requestedBy, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.AssignDriver
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("deliveryId", err))
	}

	driverID, err := kernel.UUIDFromBytes(body.DriverId[:])
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("driverId", err))
	}

	cmd, err := commands.NewAssignDriverCommand(deliveryID, requestedBy, driverID, body.DriverName)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionDelivery handles POST /api/v1/deliveries/{deliveryId}/transition -
// every lifecycle move goes through this single endpoint.
func (s *Server) TransitionDelivery(ctx echo.Context, deliveryId openapi_types.UUID) error {
	requestedBy, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.Transition
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("deliveryId", err))
	}

	action, err := commands.ActionFromString(string(body.Action))
	if err != nil {
		return writeError(ctx, err)
	}

	payload, err := transitionPayloadFromBody(body)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransitionDeliveryCommand(deliveryID, requestedBy, action, payload)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.transitionDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUnresolvedIncidents handles GET /api/v1/incidents/unresolved - the triage queue.
func (s *Server) GetUnresolvedIncidents(ctx echo.Context) error {
	if _, err := actorFromHeaders(ctx); err != nil {
		return writeError(ctx, err)
	}

	query := queries.NewGetUnresolvedIncidentsQuery()

	incidents, err := s.getUnresolvedIncidentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Incident, len(incidents))
	for i, inc := range incidents {
		response[i] = servers.Incident{
			Id:                inc.ID.Bytes(),
			DeliveryId:        inc.DeliveryID.Bytes(),
			DeliveryReference: inc.DeliveryReference,
			Type:              inc.Type,
			Status:            inc.Status,
			Description:       inc.Description,
			ReportedAt:        inc.ReportedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ResolveIncident handles POST /api/v1/incidents/{incidentId}/resolve.
func (s *Server) ResolveIncident(ctx echo.Context, incidentId openapi_types.UUID) error {
	requestedBy, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.ResolveIncident
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	incidentID, err := kernel.UUIDFromBytes(incidentId[:])
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("incidentId", err))
	}

	cmd, err := commands.NewResolveIncidentCommand(incidentID, requestedBy, body.Resolution)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.resolveIncidentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateStockItem handles POST /api/v1/stock - registers a new stock item.
func (s *Server) CreateStockItem(ctx echo.Context) error {
	requestedBy, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.NewStockItem
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	unitPrice, err := optionalDecimal("unitPrice", body.UnitPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	stockID := kernel.NewUUID()

	cmd, err := commands.NewCreateStockItemCommand(
		stockID,
		requestedBy,
		body.Name,
		body.Reference,
		body.Unit,
		body.Quantity,
		body.MinQuantity,
		unitPrice,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createStockItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: stockID.Bytes()})
}

// GetLowStock handles GET /api/v1/stock/low - the replenishment list.
func (s *Server) GetLowStock(ctx echo.Context) error {
	if _, err := actorFromHeaders(ctx); err != nil {
		return writeError(ctx, err)
	}

	query := queries.NewGetLowStockQuery()

	items, err := s.getLowStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.LowStockItem, len(items))
	for i, item := range items {
		response[i] = servers.LowStockItem{
			Id:          item.ID.Bytes(),
			Name:        item.Name,
			Reference:   item.Reference,
			Quantity:    item.Quantity,
			MinQuantity: item.MinQuantity,
			Shortfall:   item.Shortfall(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdjustStock handles POST /api/v1/stock/{stockId}/adjust - sets the absolute
// quantity after a physical count.
func (s *Server) AdjustStock(ctx echo.Context, stockId openapi_types.UUID) error {
	requestedBy, err := actorFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.AdjustStock
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	stockID, err := kernel.UUIDFromBytes(stockId[:])
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("stockId", err))
	}

	cmd, err := commands.NewAdjustStockCommand(stockID, requestedBy, body.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.adjustStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// actorFromHeaders reads the caller identity forwarded by the gateway.
func actorFromHeaders(ctx echo.Context) (actor.Actor, error) {
	idHeader := ctx.Request().Header.Get(headerActorID)
	if idHeader == "" {
		return actor.Actor{}, errs.NewValueIsRequiredError(headerActorID)
	}

	roleHeader := ctx.Request().Header.Get(headerActorRole)
	if roleHeader == "" {
		return actor.Actor{}, errs.NewValueIsRequiredError(headerActorRole)
	}

	nameHeader := ctx.Request().Header.Get(headerActorName)
	if nameHeader == "" {
		return actor.Actor{}, errs.NewValueIsRequiredError(headerActorName)
	}

	actorID, err := kernel.UUIDFromString(idHeader)
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause(headerActorID, err)
	}

	role, err := actor.RoleFromString(roleHeader)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(actorID, role, nameHeader)
}

// deliverySpecFromBody converts the wire payload into the command spec.
// Money comes over the wire as decimal strings, never floats.
func deliverySpecFromBody(body servers.NewDelivery) (commands.CreateDeliverySpec, error) {
	clientID, err := kernel.UUIDFromBytes(body.ClientId[:])
	if err != nil {
		return commands.CreateDeliverySpec{}, errs.NewValueIsInvalidErrorWithCause("clientId", err)
	}

	priority, err := delivery.PriorityFromString(string(body.Priority))
	if err != nil {
		return commands.CreateDeliverySpec{}, err
	}

	var geo *kernel.GeoPoint
	if body.Lat != nil && body.Lon != nil {
		point, geoErr := kernel.NewGeoPoint(*body.Lat, *body.Lon)
		if geoErr != nil {
			return commands.CreateDeliverySpec{}, geoErr
		}
		geo = &point
	}

	price, err := optionalDecimal("price", body.Price)
	if err != nil {
		return commands.CreateDeliverySpec{}, err
	}

	vatRate, err := optionalDecimal("vatRate", body.VatRate)
	if err != nil {
		return commands.CreateDeliverySpec{}, err
	}

	items := make([]delivery.Item, 0, len(body.Items))
	for _, line := range body.Items {
		unitPrice, priceErr := optionalDecimal("unitPrice", line.UnitPrice)
		if priceErr != nil {
			return commands.CreateDeliverySpec{}, priceErr
		}

		var stockID *kernel.UUID
		if line.StockId != nil {
			id, idErr := kernel.UUIDFromBytes(line.StockId[:])
			if idErr != nil {
				return commands.CreateDeliverySpec{}, errs.NewValueIsInvalidErrorWithCause("stockId", idErr)
			}
			stockID = &id
		}

		item, itemErr := delivery.NewItem(line.Name, line.Reference, line.Qty, line.Unit, unitPrice, stockID)
		if itemErr != nil {
			return commands.CreateDeliverySpec{}, itemErr
		}
		items = append(items, item)
	}

	spec := commands.CreateDeliverySpec{
		Reference:   body.Reference,
		ClientID:    clientID,
		ClientName:  body.ClientName,
		Address:     body.Address,
		Geo:         geo,
		Priority:    priority,
		ScheduledAt: body.ScheduledAt,
		Items:       items,
		Price:       price,
		VatRate:     vatRate,
	}
	if body.Notes != nil {
		spec.Notes = *body.Notes
	}

	return spec, nil
}

func transitionPayloadFromBody(body servers.Transition) (commands.TransitionPayload, error) {
	payload := commands.TransitionPayload{}

	if body.Signature != nil {
		payload.Signature = *body.Signature
	}
	if body.Photos != nil {
		payload.Photos = *body.Photos
	}
	if body.IncidentNote != nil {
		payload.IncidentNote = *body.IncidentNote
	}
	if body.IncidentType != nil {
		incidentType, err := incident.TypeFromString(string(*body.IncidentType))
		if err != nil {
			return commands.TransitionPayload{}, err
		}
		payload.IncidentType = incidentType
	}

	return payload, nil
}

func optionalDecimal(name string, value *string) (decimal.Decimal, error) {
	if value == nil {
		return decimal.Zero, nil
	}

	parsed, err := decimal.NewFromString(*value)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return parsed, nil
}

func toDeliverySummaries(summaries []queries.DeliverySummaryResponse) []servers.DeliverySummary {
	response := make([]servers.DeliverySummary, len(summaries))
	for i, summary := range summaries {
		response[i] = servers.DeliverySummary{
			Id:          summary.ID.Bytes(),
			Reference:   summary.Reference,
			Status:      summary.Status,
			Priority:    summary.Priority,
			ClientName:  summary.ClientName,
			Address:     summary.Address,
			DriverName:  summary.DriverName,
			ScheduledAt: summary.ScheduledAt,
		}
	}

	return response
}

// writeError maps application and domain failures onto HTTP statuses.
// Validation problems are 422 because the request was well formed JSON
// that named an impossible state; 400 is reserved for unparseable bodies.
func writeError(ctx echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, errs.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrVersionConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, delivery.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}
