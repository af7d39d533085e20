package battleship

type ShotEvent struct {
	Shooter Side
	Target  Cell
	Outcome ShotOutcome

	// Ships sunk on the defender's board after this shot
	SunkCount int

	KeepsTurn bool
}

// Observer is told about everything that happens during a game.
// Calls are made synchronously from the goroutine driving the game.
type Observer interface {
	OnGameStart(g *Game)
	OnShot(g *Game, ev ShotEvent)
	OnShotRejected(g *Game, shooter Side, target Cell, err error)
	OnGameOver(g *Game)
}

// Observers fans every event out to each observer in order.
type Observers []Observer

var _ Observer = (Observers)(nil)

func (obs Observers) OnGameStart(g *Game) {
	for _, o := range obs {
		o.OnGameStart(g)
	}
}

func (obs Observers) OnShot(g *Game, ev ShotEvent) {
	for _, o := range obs {
		o.OnShot(g, ev)
	}
}

func (obs Observers) OnShotRejected(g *Game, shooter Side, target Cell, err error) {
	for _, o := range obs {
		o.OnShotRejected(g, shooter, target, err)
	}
}

func (obs Observers) OnGameOver(g *Game) {
	for _, o := range obs {
		o.OnGameOver(g)
	}
}

type nopObserver struct{}

func (nopObserver) OnGameStart(*Game)                       {}
func (nopObserver) OnShot(*Game, ShotEvent)                 {}
func (nopObserver) OnShotRejected(*Game, Side, Cell, error) {}
func (nopObserver) OnGameOver(*Game)                        {}
