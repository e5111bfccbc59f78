package solver

// CalcHub signals the serving layer when a computed field is ready.
type CalcHub struct {
	ResultDone chan struct{}
}

func NewCalcHub() *CalcHub {
	return &CalcHub{
		ResultDone: make(chan struct{}, 1),
	}
}

func (ch *CalcHub) PushSignal() {
	ch.ResultDone <- struct{}{}
}
