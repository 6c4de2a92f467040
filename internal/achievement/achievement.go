// Package achievement holds the rule registry and the evaluator that derives
// per-user achievements from the ingested snapshot.
package achievement

import "fmt"

const DefaultIconName = "default.svg"

// Grant awards one achievement to one subject with a free-text reason.
type Grant struct {
	Handle string `json:"handle"`
	Info   string `json:"info"`
}

// Achievement is one named rule. CalculateGrants must be a read-only query
// against the store; it runs with no arguments and owns no other side
// effects.
type Achievement struct {
	Title       string
	Brief       string
	Description string
	IconName    string
	// Disabled keeps a retired rule's code and documentation around without
	// registering it.
	Disabled        bool
	CalculateGrants func() ([]Grant, error)
}

func (a Achievement) String() string {
	return fmt.Sprintf("Achievement<%s>", a.Title)
}

// Registry is an append-only list of achievements, populated explicitly at
// startup so evaluation order is deterministic and inspectable.
type Registry struct {
	achievements []Achievement
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(a Achievement) {
	if a.Disabled {
		return
	}
	if a.Description == "" {
		a.Description = a.Brief
	}
	if a.IconName == "" {
		a.IconName = DefaultIconName
	}
	r.achievements = append(r.achievements, a)
}

// Achievements returns the registered rules in registration order.
func (r *Registry) Achievements() []Achievement {
	return r.achievements
}
