package sources

import (
	"fmt"
	"math"

	"github.com/san-kum/streamplot/internal/stream"
)

// pendulum integrates theta'' = -(g/L) sin(theta) - c*theta' with RK4, one
// step per tick.
type pendulum struct {
	damping, length, gravity float64
	dt                       float64
	x                        [2]float64
}

func newPendulum(p Params) (stream.Source, error) {
	pd := &pendulum{
		damping: p.Get("damping", 0.1),
		length:  p.Get("length", 1),
		gravity: p.Get("gravity", 9.81),
		dt:      p.Get("dt", 0.05),
		x:       [2]float64{p.Get("theta", 1), p.Get("omega", 0)},
	}
	if pd.length <= 0 || pd.dt <= 0 {
		return nil, &stream.ConfigError{Field: "params", Reason: fmt.Sprintf("length and dt must be positive, got %g and %g", pd.length, pd.dt)}
	}
	return pd.next, nil
}

func (p *pendulum) derive(x [2]float64) [2]float64 {
	return [2]float64{x[1], -p.damping*x[1] - p.gravity/p.length*math.Sin(x[0])}
}

func (p *pendulum) step() {
	var k [4][2]float64
	x, dt := p.x, p.dt

	k[0] = p.derive(x)
	k[1] = p.derive([2]float64{x[0] + dt*0.5*k[0][0], x[1] + dt*0.5*k[0][1]})
	k[2] = p.derive([2]float64{x[0] + dt*0.5*k[1][0], x[1] + dt*0.5*k[1][1]})
	k[3] = p.derive([2]float64{x[0] + dt*k[2][0], x[1] + dt*k[2][1]})

	dt6 := dt / 6.0
	for i := range p.x {
		p.x[i] = x[i] + dt6*(k[0][i]+2*k[1][i]+2*k[2][i]+k[3][i])
	}
}

// energy per unit mass, used by tests.
func (p *pendulum) energy() float64 {
	v := p.length * p.x[1]
	return 0.5*v*v + p.gravity*p.length*(1-math.Cos(p.x[0]))
}

func (p *pendulum) next() []float64 {
	p.step()
	return []float64{p.x[0], p.x[1]}
}
