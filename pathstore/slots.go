package pathstore

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/milk9111/freecam/freecam"
	"github.com/quasilyte/gdata/v2"
)

const (
	slotsObject = "paths"
	indexProp   = "index"
	slotPrefix  = "slot_"
)

var ErrSlotNotFound = errors.New("pathstore: slot not found")

// Slots keeps named paths in the per-user data directory.
type Slots struct {
	m *gdata.Manager
}

// OpenSlots opens the data directory for appName.
func OpenSlots(appName string) (*Slots, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("pathstore: open slots: %w", err)
	}
	return NewSlots(m), nil
}

func NewSlots(m *gdata.Manager) *Slots {
	return &Slots{m: m}
}

// List returns slot names in save order.
func (s *Slots) List() ([]string, error) {
	if !s.m.ObjectPropExists(slotsObject, indexProp) {
		return nil, nil
	}
	data, err := s.m.LoadObjectProp(slotsObject, indexProp)
	if err != nil {
		return nil, fmt.Errorf("pathstore: load slot index: %w", err)
	}
	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

func (s *Slots) Save(name string, poses []freecam.Pose) error {
	if err := validSlotName(name); err != nil {
		return err
	}
	if err := s.m.SaveObjectProp(slotsObject, slotPrefix+name, Encode(poses)); err != nil {
		return fmt.Errorf("pathstore: save slot %q: %w", name, err)
	}
	names, err := s.List()
	if err != nil {
		return err
	}
	if slices.Contains(names, name) {
		return nil
	}
	names = append(names, name)
	if err := s.m.SaveObjectProp(slotsObject, indexProp, []byte(strings.Join(names, "\n"))); err != nil {
		return fmt.Errorf("pathstore: save slot index: %w", err)
	}
	return nil
}

func (s *Slots) Load(name string) ([]freecam.Pose, error) {
	if err := validSlotName(name); err != nil {
		return nil, err
	}
	if !s.m.ObjectPropExists(slotsObject, slotPrefix+name) {
		return nil, fmt.Errorf("%w: %q", ErrSlotNotFound, name)
	}
	data, err := s.m.LoadObjectProp(slotsObject, slotPrefix+name)
	if err != nil {
		return nil, fmt.Errorf("pathstore: load slot %q: %w", name, err)
	}
	poses, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("pathstore: load slot %q: %w", name, err)
	}
	return poses, nil
}

func validSlotName(name string) error {
	if name == "" {
		return fmt.Errorf("pathstore: empty slot name")
	}
	if strings.ContainsAny(name, "/\\\n") {
		return fmt.Errorf("pathstore: invalid slot name %q", name)
	}
	return nil
}
