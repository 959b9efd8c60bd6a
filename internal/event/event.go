// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // TargetData, ClickData или ModeData, зависит от типа
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — диспетчер событий. Синхронный: Dispatch возвращается после
// того, как все подписчики отработали.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll — подписка одного слушателя на несколько типов сразу
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, eventType := range eventTypes {
		d.Subscribe(eventType, listener)
	}
}

// Unsubscribe — отписка от события. Срез заменяется копией, поэтому
// Dispatch, который уже идёт, дорабатывает по старому списку.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l != listener {
			continue
		}
		kept := make([]Listener, 0, len(listeners)-1)
		kept = append(kept, listeners[:i]...)
		d.listeners[eventType] = append(kept, listeners[i+1:]...)
		return
	}
}

// Dispatch — отправка события всем подписчикам по порядку подписки
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
