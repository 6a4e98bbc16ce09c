package model

// Учебных дней в неделе (пн-пт)
const DaysPerWeek = 5

// Пар в одном дне
const SlotsPerDay = 8

// Slot занятия в одно время: nil - пары нет, одно занятие - у всей группы,
// два - у подгрупп разные пары. В JSON это null, [s] или [s1, s2].
type Slot []Session

// NewSlot собрать слот из занятий двух подгрупп.
// Пустые занятия в слот не попадают, поэтому пары с пустым элементом не бывает.
func NewSlot(first, second Session) Slot {
	switch {
	case first.IsEmpty() && second.IsEmpty():
		return nil
	case second.IsEmpty():
		return Slot{first}
	case first.IsEmpty():
		return Slot{second}
	default:
		return Slot{first, second}
	}
}

// IsEmpty нет ни одного занятия
func (s Slot) IsEmpty() bool {
	return len(s) == 0
}

// Day все пары одного дня, по индексу пары
type Day [SlotsPerDay]Slot

// Timetable расписание на неделю, с понедельника по пятницу
type Timetable [DaysPerWeek]Day

// Filter оставить только занятия, для которых keep вернул true.
// Слоты пересобираются через NewSlot, так что правила схлопывания сохраняются.
func (t Timetable) Filter(keep func(Session) bool) Timetable {
	var ret Timetable
	for day := range t {
		for slot, sessions := range t[day] {
			var kept [2]Session
			for i, s := range sessions {
				if i < len(kept) && keep(s) {
					kept[i] = s
				}
			}
			ret[day][slot] = NewSlot(kept[0], kept[1])
		}
	}
	return ret
}

// Sessions количество непустых занятий за неделю
func (t Timetable) Sessions() (n int) {
	for _, day := range t {
		for _, slot := range day {
			n += len(slot)
		}
	}
	return n
}

// Schedule расписание вместе с тем, к чему оно относится
type Schedule struct {
	Institution string    `json:"institution"` //Учебное заведение
	Department  string    `json:"department"`  //Код факультета/специальности
	Year        int       `json:"year"`        //Индекс курса (года обучения)
	Timetable   Timetable `json:"timetable"`
}
