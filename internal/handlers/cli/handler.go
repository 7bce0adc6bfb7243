// Package cli is the interactive control surface: a numbered menu over the
// house map service for recording what the player sees in game.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"github.com/brownlk99/blue-prince-ml-sub000/internal/game"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/house"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/services/housemap"
)

var (
	headerStyle = color.Style{color.FgCyan, color.OpBold}
	errorStyle  = color.Style{color.FgRed}
	okStyle     = color.Style{color.FgGreen}
)

// switchNames is the set of utility closet breakers the toggle menu accepts
var switchNames = func() mapset.Set[string] {
	s := mapset.New[string]()
	s.Put("keycard")
	s.Put("gymnasium")
	s.Put("darkroom")
	s.Put("garage")
	return s
}()

// Handler drives the interactive menu for one run
type Handler struct {
	service housemap.Service
	runID   string
	in      *bufio.Reader
	out     io.Writer
}

// HandlerConfig holds configuration for the CLI handler
type HandlerConfig struct {
	Service housemap.Service // Required
	RunID   string           // Required
	Input   io.Reader        // Required
	Output  io.Writer        // Required
}

// NewHandler creates a new CLI handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.Service == nil {
		panic("service is required")
	}
	if cfg.RunID == "" {
		panic("run ID is required")
	}
	if cfg.Input == nil {
		panic("input is required")
	}
	if cfg.Output == nil {
		panic("output is required")
	}
	return &Handler{
		service: cfg.Service,
		runID:   cfg.RunID,
		in:      bufio.NewReader(cfg.Input),
		out:     cfg.Output,
	}
}

type menuEntry struct {
	label  string
	action func(ctx context.Context) error
}

// Run loops the main menu until the user quits or input ends
func (h *Handler) Run(ctx context.Context) error {
	entries := []menuEntry{
		{"Draft Room - Record a newly drafted room", h.draftRoom},
		{"Edit Room - Update trunks, dig spots or shop stock", h.editRoom},
		{"Edit Doors - Correct a door's recorded state", h.editDoors},
		{"Move - Relocate the player to a drafted room", h.move},
		{"Capture Resources - Record current resource counts", h.captureResources},
		{"Terminal - Use the terminal in a drafted room", h.terminalMenu},
		{"Toggle Switch - Flip a utility closet breaker", h.toggleSwitch},
		{"Coat Check - Store an item in the coat check", h.storeCoatCheckItem},
		{"Solve Puzzle - Mark the parlor puzzle solved", h.solvePuzzle},
		{"Use Secret Passage - Spend the secret passage", h.useSecretPassage},
		{"Capture Note - Record a note found in a room", h.captureNote},
		{"Show House Map - Display the current layout", h.showMap},
		{"Summarize - Print the full state summary", h.summarize},
		{"Scan Actions - Show which actions are available", h.scanActions},
		{"Call It a Day - End the day and reset the house", h.callItADay},
	}

	for {
		fmt.Fprintln(h.out, headerStyle.Sprint("\n=========== Blue Prince Assistant ==========="))
		for i, e := range entries {
			fmt.Fprintf(h.out, "%2d. %s\n", i+1, e.label)
		}
		fmt.Fprintln(h.out, " q. Quit")

		choice, err := h.readLine("Enter choice: ")
		if err != nil {
			return err
		}
		if strings.EqualFold(choice, "q") {
			return nil
		}

		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > len(entries) {
			h.printErr("Invalid choice, try again.")
			continue
		}

		if err := entries[idx-1].action(ctx); err != nil {
			h.printErr("Error: %v", err)
		}
	}
}

func (h *Handler) printOK(format string, a ...any) {
	fmt.Fprintln(h.out, okStyle.Sprintf(format, a...))
}

func (h *Handler) printErr(format string, a ...any) {
	fmt.Fprintln(h.out, errorStyle.Sprintf(format, a...))
}

func (h *Handler) readLine(prompt string) (string, error) {
	fmt.Fprint(h.out, prompt)
	line, err := h.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt re-prompts until the user enters a valid integer
func (h *Handler) promptInt(prompt string) (int, error) {
	for {
		raw, err := h.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			h.printErr("Please enter a whole number.")
			continue
		}
		return n, nil
	}
}

// promptOrientation re-prompts until the user enters N, S, E or W
func (h *Handler) promptOrientation(prompt string) (house.Orientation, error) {
	for {
		raw, err := h.readLine(prompt)
		if err != nil {
			return house.OrientationUnknown, err
		}
		o, parseErr := house.ParseOrientation(raw)
		if parseErr != nil {
			h.printErr("Please enter one of N, S, E, W.")
			continue
		}
		return o, nil
	}
}

// promptTriState re-prompts until the user enters a recognizable tri-state.
// Empty input means unknown.
func (h *Handler) promptTriState(prompt string) (house.TriState, error) {
	for {
		raw, err := h.readLine(prompt)
		if err != nil {
			return house.TriUnknown, err
		}
		t, parseErr := house.ParseTriState(raw)
		if parseErr != nil {
			h.printErr("Please enter True, False, N/A or ? (empty for unknown).")
			continue
		}
		return t, nil
	}
}

func (h *Handler) draftRoom(ctx context.Context) error {
	name, err := h.readLine("Room name: ")
	if err != nil {
		return err
	}
	shape, err := h.readLine("Shape (DEAD END/STRAIGHT/L/T/CROSS): ")
	if err != nil {
		return err
	}
	x, err := h.promptInt("X position: ")
	if err != nil {
		return err
	}
	y, err := h.promptInt("Y position: ")
	if err != nil {
		return err
	}
	doorCount, err := h.promptInt("Number of doors: ")
	if err != nil {
		return err
	}

	input := &housemap.DraftRoomInput{Name: name, Shape: shape, X: x, Y: y}
	for i := 0; i < doorCount; i++ {
		orientation, err := h.promptOrientation(fmt.Sprintf("Door %d orientation (N/S/E/W): ", i+1))
		if err != nil {
			return err
		}
		locked, err := h.promptTriState(fmt.Sprintf("Door %d locked: ", i+1))
		if err != nil {
			return err
		}
		security, err := h.promptTriState(fmt.Sprintf("Door %d security: ", i+1))
		if err != nil {
			return err
		}
		input.Doors = append(input.Doors, housemap.DoorSpec{
			Orientation: orientation,
			Locked:      locked,
			IsSecurity:  security,
		})
	}

	room, err := h.service.DraftRoom(ctx, h.runID, input)
	if err != nil {
		return err
	}
	h.printOK("Drafted %s at %s.", room.Name, room.Position)
	return nil
}

func (h *Handler) move(ctx context.Context) error {
	x, err := h.promptInt("X position: ")
	if err != nil {
		return err
	}
	y, err := h.promptInt("Y position: ")
	if err != nil {
		return err
	}
	if err := h.service.MoveTo(ctx, h.runID, x, y); err != nil {
		return err
	}
	h.printOK("Moved to (%d, %d).", x, y)
	return nil
}

func (h *Handler) captureResources(ctx context.Context) error {
	footprints, err := h.promptInt("Footprints: ")
	if err != nil {
		return err
	}
	dice, err := h.promptInt("Dice: ")
	if err != nil {
		return err
	}
	keys, err := h.promptInt("Keys: ")
	if err != nil {
		return err
	}
	gems, err := h.promptInt("Gems: ")
	if err != nil {
		return err
	}
	coins, err := h.promptInt("Coins: ")
	if err != nil {
		return err
	}

	resources := game.Resources{
		Footprints: footprints,
		Dice:       dice,
		Keys:       keys,
		Gems:       gems,
		Coins:      coins,
	}
	if err := h.service.SetResources(ctx, h.runID, resources); err != nil {
		return err
	}
	h.printOK("Resources updated.")
	return nil
}

func (h *Handler) toggleSwitch(ctx context.Context) error {
	for {
		name, err := h.readLine("Switch (keycard/gymnasium/darkroom/garage): ")
		if err != nil {
			return err
		}
		name = strings.ToLower(name)
		if !switchNames.Has(name) {
			h.printErr("Unknown switch, try again.")
			continue
		}

		on, err := h.service.ToggleSwitch(ctx, h.runID, name)
		if err != nil {
			return err
		}
		h.printOK("Switch %s is now %s.", name, onOff(on))
		return nil
	}
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

func (h *Handler) storeCoatCheckItem(ctx context.Context) error {
	item, err := h.readLine("Item to store: ")
	if err != nil {
		return err
	}
	previous, err := h.service.StoreCoatCheckItem(ctx, h.runID, item)
	if err != nil {
		return err
	}
	if previous != "" {
		fmt.Fprintf(h.out, "Swapped out %s.\n", previous)
	}
	h.printOK("Stored %s in the coat check.", item)
	return nil
}

func (h *Handler) solvePuzzle(ctx context.Context) error {
	if err := h.service.MarkPuzzleSolved(ctx, h.runID); err != nil {
		return err
	}
	h.printOK("Puzzle marked solved.")
	return nil
}

func (h *Handler) useSecretPassage(ctx context.Context) error {
	if err := h.service.UseSecretPassage(ctx, h.runID); err != nil {
		return err
	}
	h.printOK("Secret passage used.")
	return nil
}

func (h *Handler) captureNote(ctx context.Context) error {
	title, err := h.readLine("Note title: ")
	if err != nil {
		return err
	}
	content, err := h.readLine("Note content: ")
	if err != nil {
		return err
	}
	foundIn, err := h.readLine("Found in room: ")
	if err != nil {
		return err
	}
	noteColor, err := h.readLine("Note color: ")
	if err != nil {
		return err
	}

	added, err := h.service.AddNote(ctx, h.runID, game.Note{
		Title:       title,
		Content:     content,
		FoundInRoom: strings.ToUpper(foundIn),
		Color:       noteColor,
	})
	if err != nil {
		return err
	}
	if !added {
		fmt.Fprintln(h.out, "Note already captured.")
		return nil
	}
	h.printOK("Note captured.")
	return nil
}

func (h *Handler) showMap(ctx context.Context) error {
	rendered, err := h.service.RenderMap(ctx, h.runID)
	if err != nil {
		return err
	}
	fmt.Fprintln(h.out, rendered)
	return nil
}

func (h *Handler) summarize(ctx context.Context) error {
	summary, err := h.service.Summary(ctx, h.runID)
	if err != nil {
		return err
	}
	fmt.Fprintln(h.out, summary)
	return nil
}

func (h *Handler) scanActions(ctx context.Context) error {
	flags, err := h.service.ScanAvailableActions(ctx, h.runID)
	if err != nil {
		return err
	}
	fmt.Fprintf(h.out, "Shop: %t\nUnsolved puzzle: %t\nTrunks: %t\nDig spots: %t\nTerminal: %t\nCoat check: %t\nUtility closet: %t\nUnused secret passage: %t\n",
		flags.ShopPresent, flags.UnsolvedPuzzlePresent, flags.TrunkPresent, flags.DigSpotPresent,
		flags.TerminalPresent, flags.CoatCheckPresent, flags.UtilityClosetPresent, flags.UnusedSecretPassagePresent)
	return nil
}

func (h *Handler) callItADay(ctx context.Context) error {
	run, err := h.service.AdvanceDay(ctx, h.runID)
	if err != nil {
		return err
	}
	h.printOK("Day ended. Now on day %d.", run.Day)
	return nil
}
