package services

type updateDeps struct {
	rt *RealtimeHub
}

var _updates updateDeps

func InitUpdateBus(rt *RealtimeHub) {
	_updates = updateDeps{rt: rt}
}

// EmitUpdate is safe to call anywhere; it is a no-op until the bus is
// initialized, so handlers never have to care whether a hub exists.
func EmitUpdate(event string, payload any) {
	if _updates.rt == nil {
		return
	}
	_updates.rt.Broadcast(event, payload)
}
