package postgres

import "github.com/eventos-app/api/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.User{},
	&entity.Event{},
	&entity.EventAttendee{},
	&entity.Comment{},
	&entity.Reminder{},
}
