package pass

import (
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const table = "passes"

var passColumns = []string{
	"id",
	"pass_type",
	"user_role",
	"user_name",
	"email",
	"mobile",
	"age",
	"vehicle_number",
	"start_date",
	"end_date",
	"start_time",
	"end_time",
	"status",
	"arrived",
	"extension_requested",
	"created_at",
	"updated_at",
}

func insertQuery(p *domain.Pass) (string, []interface{}, error) {
	return psqlbuilder.Insert(table).
		Columns(
			"pass_type",
			"user_role",
			"user_name",
			"email",
			"mobile",
			"age",
			"vehicle_number",
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"status",
			"arrived",
			"extension_requested",
		).
		Values(
			p.PassType,
			p.UserRole,
			p.UserName,
			p.Email,
			p.Mobile,
			p.Age,
			p.VehicleNumber,
			p.StartDate,
			p.EndDate,
			p.StartTime,
			p.EndTime,
			p.Status,
			p.Arrived,
			p.ExtensionRequested,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func selectByIDQuery(id int64) (string, []interface{}, error) {
	return psqlbuilder.Select(passColumns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// transitionQuery меняет статус только если текущий статус равен from
func transitionQuery(id int64, from, to domain.PassStatus, extensionRequested bool, now time.Time) (string, []interface{}, error) {
	return psqlbuilder.Update(table).
		Set("status", to).
		Set("extension_requested", extensionRequested).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
}

func markArrivedQuery(id int64, now time.Time) (string, []interface{}, error) {
	return psqlbuilder.Update(table).
		Set("arrived", true).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// expireQuery переводит в expired абонементы, закончившиеся раньше today
func expireQuery(today time.Time, now time.Time) (string, []interface{}, error) {
	return psqlbuilder.Update(table).
		Set("status", domain.PassStatusExpired).
		Set("updated_at", now).
		Where(squirrel.Eq{"status": domain.ExpirableStatuses}).
		Where(squirrel.Lt{"end_date": today}).
		ToSql()
}
