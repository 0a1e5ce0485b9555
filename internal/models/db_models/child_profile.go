package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	BadgeFirstCentury = "first_century"
	BadgeLevel5       = "level_5"
	BadgeLevel10      = "level_10"
)

type ChildProfile struct {
	BaseModel
	ParentID  uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Age       int
	Allergies pq.StringArray `gorm:"type:text[]"`

	// Gamification state. Points only ever grow, level is a pure function
	// of points and badges are never revoked.
	Points int            `gorm:"default:0"`
	Level  int            `gorm:"default:1"`
	Badges pq.StringArray `gorm:"type:text[]"`
}

// LevelForPoints computes the level for a cumulative point total.
func LevelForPoints(points int) int {
	level := points/100 + 1
	if level < 1 {
		level = 1
	}
	return level
}

type badgeRule struct {
	ID    string
	Earns func(points, level int) bool
}

// Ordered threshold table, evaluated once per award.
var badgeRules = []badgeRule{
	{BadgeFirstCentury, func(points, level int) bool { return points >= 100 }},
	{BadgeLevel5, func(points, level int) bool { return level >= 5 }},
	{BadgeLevel10, func(points, level int) bool { return level >= 10 }},
}

// HasBadge reports whether the profile already owns the badge.
func (c *ChildProfile) HasBadge(id string) bool {
	for _, b := range c.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// ApplyAward adds points, recomputes the level and evaluates the badge
// table. It returns whether the level increased and the badges earned by
// this call only; badges already present are never re-added.
func (c *ChildProfile) ApplyAward(points int) (levelUp bool, newBadges []string) {
	oldLevel := c.Level
	c.Points += points
	c.Level = LevelForPoints(c.Points)

	newBadges = []string{}
	for _, rule := range badgeRules {
		if c.HasBadge(rule.ID) {
			continue
		}
		if rule.Earns(c.Points, c.Level) {
			c.Badges = append(c.Badges, rule.ID)
			newBadges = append(newBadges, rule.ID)
		}
	}
	return c.Level > oldLevel, newBadges
}
