package component

// Target помечает сущность как цель, по которой кликает игрок.
type Target struct {
	Size float64 // Визуальный размер (ширина и высота спрайта)
}

// HalfHeight возвращает половину высоты цели; от неё считается уровень пола.
func (t *Target) HalfHeight() float64 {
	return t.Size / 2
}
