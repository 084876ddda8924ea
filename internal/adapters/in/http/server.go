package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type JobBoard interface {
	Handle(ctx context.Context, query queries.GetAvailableJobsQuery) (queries.GetAvailableJobsQueryResponse, error)
}

type JobAccepter interface {
	Handle(ctx context.Context, command commands.AcceptJobCommand) (*job.Job, error)
}

type LocationReporter interface {
	Handle(ctx context.Context, command commands.UpdateLocationCommand) error
}

type OnlineToggler interface {
	Handle(ctx context.Context, command commands.ToggleOnlineCommand) (bool, error)
}

// Server exposes the courier-facing dispatch API.
type Server struct {
	availableJobs  JobBoard
	acceptJob      JobAccepter
	updateLocation LocationReporter
	toggleOnline   OnlineToggler
}

func NewServer(
	availableJobs JobBoard,
	acceptJob JobAccepter,
	updateLocation LocationReporter,
	toggleOnline OnlineToggler,
) *Server {
	return &Server{
		availableJobs:  availableJobs,
		acceptJob:      acceptJob,
		updateLocation: updateLocation,
		toggleOnline:   toggleOnline,
	}
}

// RegisterRoutes mounts the courier endpoints behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	group := e.Group("/api/courier", auth)
	group.GET("/jobs", s.GetAvailableJobs)
	group.POST("/accept", s.AcceptJob)
	group.POST("/update-location", s.UpdateLocation)
	group.POST("/toggle-online", s.ToggleOnline)
}

type errorResponse struct {
	Error string `json:"error"`
}

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type pickupLocationResponse struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type availableJobResponse struct {
	ID             int64                  `json:"id"`
	Description    string                 `json:"description"`
	PickupLocation pickupLocationResponse `json:"pickupLocation"`
	DeliveryFee    string                 `json:"deliveryFee"`
	DistanceKm     float64                `json:"distanceKm"`
	CreatedAt      time.Time              `json:"createdAt"`
}

type availableJobsResponse struct {
	Jobs            []availableJobResponse `json:"jobs"`
	CourierLocation locationResponse       `json:"courierLocation"`
}

type noLocationResponse struct {
	Error string                 `json:"error"`
	Jobs  []availableJobResponse `json:"jobs"`
}

// GetAvailableJobs lists unassigned ready jobs within dispatch radius of the
// courier, nearest first.
func (s *Server) GetAvailableJobs(c echo.Context) error {
	principal, ok := PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}
	if !principal.Capabilities.IsCourier {
		return c.JSON(http.StatusForbidden, errorResponse{Error: "Courier profile required"})
	}

	query, err := queries.NewGetAvailableJobsQuery(principal.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	response, err := s.availableJobs.Handle(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, queries.ErrCourierLocationUnknown) {
			return c.JSON(http.StatusBadRequest, noLocationResponse{
				Error: "Location required. Please enable location services.",
				Jobs:  []availableJobResponse{},
			})
		}
		if errors.Is(err, errs.ErrObjectNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Courier profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch available jobs"})
	}

	jobs := make([]availableJobResponse, 0, len(response.Jobs))
	for _, available := range response.Jobs {
		jobs = append(jobs, availableJobResponse{
			ID:          available.ID,
			Description: available.Description,
			PickupLocation: pickupLocationResponse{
				Name:      available.PickupName,
				Address:   available.PickupAddress,
				Latitude:  available.PickupLocation.Latitude(),
				Longitude: available.PickupLocation.Longitude(),
			},
			DeliveryFee: available.DeliveryFee,
			DistanceKm:  available.DistanceKm,
			CreatedAt:   available.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, availableJobsResponse{
		Jobs: jobs,
		CourierLocation: locationResponse{
			Latitude:  response.CourierLocation.Latitude(),
			Longitude: response.CourierLocation.Longitude(),
		},
	})
}

type acceptJobRequest struct {
	OrderID *int64 `json:"orderId"`
}

type acceptedJobResponse struct {
	ID           int64  `json:"id"`
	Status       string `json:"status"`
	PickupCode   string `json:"pickupCode"`
	DeliveryCode string `json:"deliveryCode"`
}

// AcceptJob claims a job for the calling courier. Exactly one courier wins a
// contested job; everyone else gets 404.
func (s *Server) AcceptJob(c echo.Context) error {
	principal, ok := PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}
	if !principal.Capabilities.IsCourier {
		return c.JSON(http.StatusForbidden, errorResponse{Error: "Courier profile required"})
	}

	var request acceptJobRequest
	if err := c.Bind(&request); err != nil || request.OrderID == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "orderId is required"})
	}

	command, err := commands.NewAcceptJobCommand(*request.OrderID, principal.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	claimed, err := s.acceptJob.Handle(c.Request().Context(), command)
	if err != nil {
		if errors.Is(err, commands.ErrJobNotAvailable) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Order not available or already assigned"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to accept order"})
	}

	return c.JSON(http.StatusOK, acceptedJobResponse{
		ID:           claimed.ID(),
		Status:       claimed.Status().String(),
		PickupCode:   claimed.PickupCode(),
		DeliveryCode: claimed.DeliveryCode(),
	})
}

type updateLocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// UpdateLocation overwrites the courier's last known position. Reports for
// callers without a courier profile are dropped without error.
func (s *Server) UpdateLocation(c echo.Context) error {
	principal, ok := PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}

	var request updateLocationRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "latitude and longitude are required"})
	}

	command, err := commands.NewUpdateLocationCommand(principal.UserID, request.Latitude, request.Longitude)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := s.updateLocation.Handle(c.Request().Context(), command); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to update location"})
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

type toggleOnlineResponse struct {
	IsOnline bool `json:"isOnline"`
}

// ToggleOnline flips the courier's availability flag and reports the new
// state.
func (s *Server) ToggleOnline(c echo.Context) error {
	principal, ok := PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	}

	command, err := commands.NewToggleOnlineCommand(principal.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	isOnline, err := s.toggleOnline.Handle(c.Request().Context(), command)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Courier profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to toggle online status"})
	}

	return c.JSON(http.StatusOK, toggleOnlineResponse{IsOnline: isOnline})
}
