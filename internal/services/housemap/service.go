// Package housemap is the orchestration surface over the house map: the
// capture and reasoning collaborators call it to draft rooms, record door
// intel and keep the persisted run in sync.
package housemap

//go:generate mockgen -destination=mock/mock_service.go -package=mockhousemap -source=service.go

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/brownlk99/blue-prince-ml-sub000/internal/errors"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/game"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/house"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/repositories/runs"
)

// Repository is an alias for the runs repository interface
type Repository = runs.Repository

// Service defines the house map service interface
type Service interface {
	// StartRun creates and persists a fresh run for the given day
	StartRun(ctx context.Context, day int) (*game.Run, error)

	// GetRun retrieves a run by ID
	GetRun(ctx context.Context, runID string) (*game.Run, error)

	// LatestRun retrieves the most recently started run
	LatestRun(ctx context.Context) (*game.Run, error)

	// DraftRoom places a newly drafted room, resolves its door connections
	// and re-derives security locks
	DraftRoom(ctx context.Context, runID string, input *DraftRoomInput) (*house.Room, error)

	// UpdateRoom overwrites an already-drafted room in place
	UpdateRoom(ctx context.Context, runID string, room *house.Room) error

	// EditDoor patches a single door's recorded state
	EditDoor(ctx context.Context, runID string, input *DoorEditInput) error

	// MoveTo relocates the player to a drafted room
	MoveTo(ctx context.Context, runID string, x, y int) error

	// SetResources overwrites the tracked resource counts
	SetResources(ctx context.Context, runID string, resources game.Resources) error

	// SetOfflineMode changes the security terminal's offline mode
	SetOfflineMode(ctx context.Context, runID string, mode house.OfflineMode) error

	// SetSecurityLevel changes the security terminal's level
	SetSecurityLevel(ctx context.Context, runID string, level house.SecurityLevel) error

	// ToggleSwitch flips one utility closet breaker, returning its new state
	ToggleSwitch(ctx context.Context, runID, switchName string) (bool, error)

	// StoreCoatCheckItem puts an item in the coat check, returning whatever
	// it previously held
	StoreCoatCheckItem(ctx context.Context, runID, item string) (string, error)

	// MarkPuzzleSolved records the parlor puzzle as solved
	MarkPuzzleSolved(ctx context.Context, runID string) error

	// UseSecretPassage spends the secret passage
	UseSecretPassage(ctx context.Context, runID string) error

	// AddNote records a captured note, reporting whether it was new
	AddNote(ctx context.Context, runID string, note game.Note) (bool, error)

	// AdvanceDay ends the run's day and persists the reset state
	AdvanceDay(ctx context.Context, runID string) (*game.Run, error)

	// ScanAvailableActions re-derives the action availability flags
	ScanAvailableActions(ctx context.Context, runID string) (house.AvailableActions, error)

	// Summary renders the run state as plain text for the reasoning collaborator
	Summary(ctx context.Context, runID string) (string, error)

	// RenderMap renders the colorized grid view
	RenderMap(ctx context.Context, runID string) (string, error)
}

// DoorSpec describes one door of a room being drafted
type DoorSpec struct {
	Orientation house.Orientation
	Locked      house.TriState
	IsSecurity  house.TriState
}

// DraftRoomInput contains the captured data for a freshly drafted room
type DraftRoomInput struct {
	Name     string
	Shape    string
	X, Y     int
	Cost     int
	Types    []string
	Rarity   string
	Trunks   int
	DigSpots int
	Doors    []DoorSpec
}

// DoorEditInput is a patch for one door; nil fields are left untouched
type DoorEditInput struct {
	X, Y        int
	Orientation house.Orientation
	LeadsTo     *string
	Locked      *house.TriState
	IsSecurity  *house.TriState
}

// service implements the Service interface
type service struct {
	repository Repository
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository // Required
}

// NewService creates a new house map service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	return &service{
		repository: cfg.Repository,
	}
}

func (s *service) StartRun(ctx context.Context, day int) (*game.Run, error) {
	state := game.NewState(day)
	run := &game.Run{
		Day:   state.Day,
		State: state,
	}

	if err := s.repository.Create(ctx, run); err != nil {
		return nil, errors.Wrap(err, "failed to create run")
	}

	log.WithFields(log.Fields{
		"run_id": run.ID,
		"day":    run.Day,
	}).Info("started new run")

	return run, nil
}

func (s *service) GetRun(ctx context.Context, runID string) (*game.Run, error) {
	if runID == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}
	return s.repository.Get(ctx, runID)
}

func (s *service) LatestRun(ctx context.Context) (*game.Run, error) {
	return s.repository.GetLatest(ctx)
}

// mutate loads the run, applies fn and persists the result. fn must leave
// the state untouched when it returns an error.
func (s *service) mutate(ctx context.Context, runID string, fn func(*game.State) error) (*game.Run, error) {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.State == nil {
		return nil, errors.Internalf("run %s has no state", runID)
	}

	if err := fn(run.State); err != nil {
		return nil, err
	}

	run.Day = run.State.Day
	if err := s.repository.Update(ctx, run); err != nil {
		return nil, errors.Wrap(err, "failed to persist run")
	}
	return run, nil
}

func (s *service) DraftRoom(ctx context.Context, runID string, input *DraftRoomInput) (*house.Room, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("room name is required")
	}

	doors := make([]*house.Door, 0, len(input.Doors))
	for _, spec := range input.Doors {
		door := house.NewDoor(spec.Orientation)
		if spec.Locked != "" {
			door.Locked = spec.Locked
		}
		if spec.IsSecurity != "" {
			door.IsSecurity = spec.IsSecurity
		}
		doors = append(doors, door)
	}

	room := house.NewRoom(input.Name, input.Shape, house.Position{X: input.X, Y: input.Y}, doors)
	room.Cost = input.Cost
	room.Types = input.Types
	room.Rarity = input.Rarity
	room.Trunks = input.Trunks
	room.DigSpots = input.DigSpots
	house.Specialize(room)

	if expected := room.ExpectedDoorCount(); expected > 0 && len(doors) != expected {
		log.WithFields(log.Fields{
			"room":     room.Name,
			"shape":    room.Shape,
			"expected": expected,
			"got":      len(doors),
		}).Warn("door count does not match room shape")
	}

	_, err := s.mutate(ctx, runID, func(state *game.State) error {
		if err := state.House.PlaceRoom(room); err != nil {
			return err
		}
		state.House.ConnectAdjacentDoors(room)
		state.ClaimCarriedItem(room)
		state.House.UpdateSecurityDoors()
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"run_id": runID,
		"room":   room.Name,
		"x":      input.X,
		"y":      input.Y,
	}).Info("drafted room")

	return room, nil
}

func (s *service) UpdateRoom(ctx context.Context, runID string, room *house.Room) error {
	if room == nil {
		return errors.InvalidArgument("room cannot be nil")
	}

	_, err := s.mutate(ctx, runID, func(state *game.State) error {
		if err := state.House.UpdateRoom(room); err != nil {
			return err
		}
		state.House.UpdateSecurityDoors()
		return nil
	})
	return err
}

func (s *service) EditDoor(ctx context.Context, runID string, input *DoorEditInput) error {
	if input == nil {
		return errors.InvalidArgument("input cannot be nil")
	}

	_, err := s.mutate(ctx, runID, func(state *game.State) error {
		room := state.House.RoomAt(input.X, input.Y)
		if room == nil {
			return errors.NotFoundf("no room drafted at (%d, %d)", input.X, input.Y)
		}
		door, err := room.DoorByOrientation(input.Orientation)
		if err != nil {
			return err
		}

		if input.LeadsTo != nil {
			door.LeadsTo = *input.LeadsTo
		}
		if input.Locked != nil {
			door.Locked = *input.Locked
		}
		if input.IsSecurity != nil {
			door.IsSecurity = *input.IsSecurity
		}

		state.House.UpdateSecurityDoors()
		return nil
	})
	return err
}

func (s *service) MoveTo(ctx context.Context, runID string, x, y int) error {
	_, err := s.mutate(ctx, runID, func(state *game.State) error {
		return state.MoveTo(x, y)
	})
	return err
}

func (s *service) SetResources(ctx context.Context, runID string, resources game.Resources) error {
	_, err := s.mutate(ctx, runID, func(state *game.State) error {
		state.Resources = resources
		return nil
	})
	return err
}

func (s *service) SetOfflineMode(ctx context.Context, runID string, mode house.OfflineMode) error {
	_, err := s.mutate(ctx, runID, func(state *game.State) error {
		security := state.House.RoomByName("SECURITY")
		if security == nil || security.Terminal == nil {
			return errors.NotFound("no security terminal drafted")
		}
		if err := security.Terminal.SetOfflineMode(mode); err != nil {
			return err
		}
		state.House.UpdateSecurityDoors()
		return nil
	})
	return err
}

func (s *service) SetSecurityLevel(ctx context.Context, runID string, level house.SecurityLevel) error {
	_, err := s.mutate(ctx, runID, func(state *game.State) error {
		security := state.House.RoomByName("SECURITY")
		if security == nil || security.Terminal == nil {
			return errors.NotFound("no security terminal drafted")
		}
		return security.Terminal.SetSecurityLevel(level)
	})
	return err
}

func (s *service) ToggleSwitch(ctx context.Context, runID, switchName string) (bool, error) {
	var newState bool
	_, err := s.mutate(ctx, runID, func(state *game.State) error {
		closet := state.House.RoomByName("UTILITY CLOSET")
		if closet == nil || closet.Switches == nil {
			return errors.NotFound("no utility closet drafted")
		}

		var target *bool
		switch switchName {
		case "keycard":
			target = &closet.Switches.KeycardEntrySystem
		case "gymnasium":
			target = &closet.Switches.Gymnasium
		case "darkroom":
			target = &closet.Switches.Darkroom
		case "garage":
			target = &closet.Switches.Garage
		default:
			return errors.InvalidArgumentf("unknown switch %q, must be keycard, gymnasium, darkroom or garage", switchName)
		}

		*target = !*target
		newState = *target
		state.House.UpdateSecurityDoors()
		return nil
	})
	return newState, err
}

func (s *service) StoreCoatCheckItem(ctx context.Context, runID, item string) (string, error) {
	var previous string
	_, err := s.mutate(ctx, runID, func(state *game.State) error {
		closet := state.House.RoomByName("COAT CHECK")
		if closet == nil || closet.CoatCheck == nil {
			return errors.NotFound("no coat check drafted")
		}
		previous = closet.CoatCheck.StoredItem
		closet.CoatCheck.StoredItem = item
		return nil
	})
	return previous, err
}

func (s *service) MarkPuzzleSolved(ctx context.Context, runID string) error {
	_, err := s.mutate(ctx, runID, func(state *game.State) error {
		parlor := state.House.RoomByName("PARLOR")
		if parlor == nil || parlor.Puzzle == nil {
			return errors.NotFound("no puzzle room drafted")
		}
		parlor.Puzzle.HasBeenSolved = true
		return nil
	})
	return err
}

func (s *service) UseSecretPassage(ctx context.Context, runID string) error {
	_, err := s.mutate(ctx, runID, func(state *game.State) error {
		passage := state.House.RoomByName("SECRET PASSAGE")
		if passage == nil || passage.Passage == nil {
			return errors.NotFound("no secret passage drafted")
		}
		if passage.Passage.HasBeenUsed {
			return errors.InvalidArgument("secret passage has already been used")
		}
		passage.Passage.HasBeenUsed = true
		return nil
	})
	return err
}

func (s *service) AddNote(ctx context.Context, runID string, note game.Note) (bool, error) {
	var added bool
	_, err := s.mutate(ctx, runID, func(state *game.State) error {
		added = state.AddNote(note)
		return nil
	})
	return added, err
}

func (s *service) AdvanceDay(ctx context.Context, runID string) (*game.Run, error) {
	run, err := s.mutate(ctx, runID, func(state *game.State) error {
		state.NextDay()
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"run_id": runID,
		"day":    run.Day,
	}).Info("advanced to next day")

	return run, nil
}

func (s *service) ScanAvailableActions(ctx context.Context, runID string) (house.AvailableActions, error) {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return house.AvailableActions{}, err
	}
	return run.State.House.ScanForAvailableActions(), nil
}

func (s *service) Summary(ctx context.Context, runID string) (string, error) {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return "", err
	}
	return run.State.Summary(), nil
}

func (s *service) RenderMap(ctx context.Context, runID string) (string, error) {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return "", err
	}
	return run.State.House.Render(), nil
}
