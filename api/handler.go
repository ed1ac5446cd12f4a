package api

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"os-scheduling-simulator/config"
	"os-scheduling-simulator/internal/core"
	"os-scheduling-simulator/internal/requests"
	"os-scheduling-simulator/internal/responses"
	"os-scheduling-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityScheduling)
}

// Simulate takes the policy from the "algorithm" field of the body.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	request, set, ok := s.parse(ctx)
	if !ok {
		return nil
	}
	policy, err := schedulers.ParsePolicy(request.Algorithm)
	if err != nil {
		return writeError(ctx, err)
	}
	response, err := s.run(set, policy, request)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

// AllAlgorithms runs every policy over the same jobs so they can be compared.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, set, ok := s.parse(ctx)
	if !ok {
		return nil
	}

	var all responses.AllAlgorithmsResponse
	for _, policy := range schedulers.Policies {
		response, err := s.run(set, policy, request)
		if err != nil {
			return writeError(ctx, err)
		}
		all.Results = append(all.Results, response)
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	request, set, ok := s.parse(ctx)
	if !ok {
		return nil
	}
	response, err := s.run(set, policy, request)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

// parse decodes and validates the body. When it returns false the error
// response has already been written.
func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (requests.ScheduleRequests, core.ProcessSet, bool) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		log.Println("invalid request body:", err)
		_ = ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "invalid request format"})
		return request, core.ProcessSet{}, false
	}
	if s.config.MaxProcesses > 0 && len(request.Jobs) > s.config.MaxProcesses {
		_ = ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{
			Error:   "too many processes",
			Message: fmt.Sprintf("%d jobs, limit is %d", len(request.Jobs), s.config.MaxProcesses),
		})
		return request, core.ProcessSet{}, false
	}
	set, err := request.ProcessSet()
	if err != nil {
		_ = writeError(ctx, err)
		return request, core.ProcessSet{}, false
	}
	return request, set, true
}

func (s *SchedulerHandlerImpl) run(set core.ProcessSet, policy schedulers.Policy, request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	var opts []schedulers.Option
	if request.TimeQuantum != nil {
		opts = append(opts, schedulers.WithQuantum(*request.TimeQuantum))
	} else if s.config.RoundRobinTimeQuantum > 0 {
		opts = append(opts, schedulers.WithQuantum(s.config.RoundRobinTimeQuantum))
	}
	if s.config.ImplicitIdle {
		opts = append(opts, schedulers.WithImplicitIdle())
	}

	result, err := schedulers.Simulate(set, policy, opts...)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return schedulers.GenerateResponse(result)
}

// writeError maps input problems to 400 and anything else to 500.
func writeError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	var message string
	switch {
	case errors.Is(err, schedulers.ErrUnknownPolicy):
		message = "invalid algorithm"
	case errors.Is(err, schedulers.ErrMissingQuantum), errors.Is(err, schedulers.ErrInvalidQuantum):
		message = "invalid time quantum"
	case isProcessSetError(err):
		message = "invalid process set"
	default:
		status = fiber.StatusInternalServerError
		message = "can not proccess request"
	}
	log.Println("schedule request failed:", err)
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: message, Message: err.Error()})
}

func isProcessSetError(err error) bool {
	for _, target := range []error{
		core.ErrEmptyProcessSet,
		core.ErrDuplicatePid,
		core.ErrInvalidPid,
		core.ErrInvalidBurst,
		core.ErrInvalidArrival,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
