package model

// Session модель одного занятия подгруппы
type Session struct {
	Name  string `json:"name"`  //Название предмета
	Tutor string `json:"tutor"` //Преподаватель
	Place string `json:"place"` //Аудитория/корпус
}

// IsEmpty пустая ли клетка расписания (все три поля пустые)
func (s Session) IsEmpty() bool {
	return s.Name == "" && s.Tutor == "" && s.Place == ""
}
