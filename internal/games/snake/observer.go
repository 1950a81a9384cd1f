package snake

// Observer receives the events a game emits.
// Callbacks run on the goroutine driving the game and should return quickly.
type Observer interface {
	// OnStart is called when a round enters Playing.
	OnStart(s Snapshot)

	// OnTick is called after every tick the snake survives.
	OnTick(s Snapshot)

	// OnScored is called on consumption, before the matching OnTick.
	OnScored(score int)

	// OnGameOver is called once per round when it ends.
	OnGameOver(r Result)
}

// NopObserver ignores every event. Embed it to implement a subset.
type NopObserver struct{}

func (NopObserver) OnStart(Snapshot)  {}
func (NopObserver) OnTick(Snapshot)   {}
func (NopObserver) OnScored(int)      {}
func (NopObserver) OnGameOver(Result) {}

// Observers fans events out to every member in order.
type Observers []Observer

func (o Observers) OnStart(s Snapshot) {
	for _, obs := range o {
		obs.OnStart(s)
	}
}

func (o Observers) OnTick(s Snapshot) {
	for _, obs := range o {
		obs.OnTick(s)
	}
}

func (o Observers) OnScored(score int) {
	for _, obs := range o {
		obs.OnScored(score)
	}
}

func (o Observers) OnGameOver(r Result) {
	for _, obs := range o {
		obs.OnGameOver(r)
	}
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Start    func(Snapshot)
	Tick     func(Snapshot)
	Scored   func(int)
	GameOver func(Result)
}

func (f ObserverFuncs) OnStart(s Snapshot) {
	if f.Start != nil {
		f.Start(s)
	}
}

func (f ObserverFuncs) OnTick(s Snapshot) {
	if f.Tick != nil {
		f.Tick(s)
	}
}

func (f ObserverFuncs) OnScored(score int) {
	if f.Scored != nil {
		f.Scored(score)
	}
}

func (f ObserverFuncs) OnGameOver(r Result) {
	if f.GameOver != nil {
		f.GameOver(r)
	}
}

var (
	_ Observer = NopObserver{}
	_ Observer = Observers(nil)
	_ Observer = ObserverFuncs{}
)
