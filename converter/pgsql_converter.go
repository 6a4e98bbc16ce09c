package converter

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uselessgoddess/suns/model"
)

// PGSQLConverter out - строка подключения. Расписание специальности/курса
// перезаписывается целиком.
type PGSQLConverter struct{}

const CreateTables = `CREATE TABLE IF NOT EXISTS timetables (
	id SERIAL PRIMARY KEY,
	institution TEXT NOT NULL,
	department TEXT NOT NULL,
	year INTEGER NOT NULL,
	fetched_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (institution, department, year)
);
CREATE TABLE IF NOT EXISTS sessions (
	timetable_id INTEGER NOT NULL REFERENCES timetables (id) ON DELETE CASCADE,
	day SMALLINT NOT NULL,
	slot SMALLINT NOT NULL,
	subgroup SMALLINT,
	name TEXT NOT NULL,
	tutor TEXT NOT NULL,
	place TEXT NOT NULL
);`
const DropTimetable = "DELETE FROM timetables WHERE institution = $1 AND department = $2 AND year = $3"
const InsertTimetableQuery = "INSERT INTO timetables (institution, department, year) VALUES ($1, $2, $3) RETURNING id"
const InsertSessionQuery = "INSERT INTO sessions (timetable_id, day, slot, subgroup, name, tutor, place) VALUES (:timetable_id, :day, :slot, :subgroup, :name, :tutor, :place)"

// sessionRow Subgroup 0 или 1 только у пары. У одиночного занятия подгруппа
// неизвестна (после свёртки не видно, в каком столбце оно было) и пишется NULL.
type sessionRow struct {
	TimetableID uint   `db:"timetable_id"`
	Day         int    `db:"day"`
	Slot        int    `db:"slot"`
	Subgroup    *int   `db:"subgroup"`
	Name        string `db:"name"`
	Tutor       string `db:"tutor"`
	Place       string `db:"place"`
}

func sessionRows(timetableID uint, t model.Timetable) (rows []sessionRow) {
	for day := range t {
		for slot, sessions := range t[day] {
			for i, s := range sessions {
				var subgroup *int
				if len(sessions) > 1 {
					subgroup = new(int)
					*subgroup = i
				}
				rows = append(rows, sessionRow{
					TimetableID: timetableID,
					Day:         day,
					Slot:        slot,
					Subgroup:    subgroup,
					Name:        s.Name,
					Tutor:       s.Tutor,
					Place:       s.Place,
				})
			}
		}
	}
	return rows
}

func (p PGSQLConverter) Write(schedule model.Schedule, out string) error {
	if out == "" {
		return fmt.Errorf("credentials can not be empty")
	}

	conn, err := sqlx.Connect("postgres", out)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.Exec(CreateTables); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	tx, err := conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(DropTimetable, schedule.Institution, schedule.Department, schedule.Year); err != nil {
		return err
	}

	var timetableID uint
	if err := tx.QueryRowx(InsertTimetableQuery, schedule.Institution, schedule.Department, schedule.Year).Scan(&timetableID); err != nil {
		return err
	}

	insertSession, err := tx.PrepareNamed(InsertSessionQuery)
	if err != nil {
		return err
	}
	defer insertSession.Close()

	for _, row := range sessionRows(timetableID, schedule.Timetable) {
		if _, err := insertSession.Exec(row); err != nil {
			return err
		}
	}

	return tx.Commit()
}
