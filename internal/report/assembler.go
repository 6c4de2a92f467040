// Package report reshapes the evaluator's rule-centric output into the
// subject-centric structure downstream consumers read.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"cfachievements/internal/achievement"
)

type Achievement struct {
	Title                string   `json:"title"`
	Brief                string   `json:"brief"`
	Description          string   `json:"description"`
	IconURL              string   `json:"icon_url"`
	UsersAwarded         int      `json:"users_awarded"`
	UsersAwardedFraction float64  `json:"users_awarded_fraction"`
	GrantInfos           []string `json:"grant_infos"`
}

type User struct {
	Handle       string        `json:"handle"`
	Achievements []Achievement `json:"achievements"`
}

// Assemble groups grants by subject. Achievements per subject keep registry
// order; grant reasons per achievement keep store return order, since
// reasons commonly encode the contest they were awarded for.
func Assemble(stats []achievement.WithStats, iconURLBase string) []User {
	byHandle := make(map[string]*User)
	var handleOrder []string

	for _, stat := range stats {
		ach := stat.Achievement

		perSubject := make(map[string]*Achievement)
		var subjectOrder []string
		for _, grant := range stat.Grants {
			entry, ok := perSubject[grant.Handle]
			if !ok {
				entry = &Achievement{
					Title:                ach.Title,
					Brief:                ach.Brief,
					Description:          ach.Description,
					IconURL:              iconURL(iconURLBase, ach.IconName),
					UsersAwarded:         stat.UsersAwarded,
					UsersAwardedFraction: stat.UsersAwardedFraction,
				}
				perSubject[grant.Handle] = entry
				subjectOrder = append(subjectOrder, grant.Handle)
			}
			entry.GrantInfos = append(entry.GrantInfos, grant.Info)
		}

		for _, handle := range subjectOrder {
			user, ok := byHandle[handle]
			if !ok {
				user = &User{Handle: handle}
				byHandle[handle] = user
				handleOrder = append(handleOrder, handle)
			}
			user.Achievements = append(user.Achievements, *perSubject[handle])
		}
	}

	users := make([]User, 0, len(handleOrder))
	for _, handle := range handleOrder {
		users = append(users, *byHandle[handle])
	}
	return users
}

func iconURL(base, name string) string {
	if base == "" {
		return name
	}
	return strings.TrimRight(base, "/") + "/" + name
}

func WriteJSON(path string, users []User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func ReadJSON(path string) ([]User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return users, nil
}
