// internal/component/player.go
package component

// Score хранит счёт игрока и количество кликов (для точности).
type Score struct {
	Points int // Сбитые цели
	Clicks int // Все клики в режиме игры, включая промахи
}
