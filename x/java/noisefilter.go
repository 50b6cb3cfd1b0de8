package java

// NoiseFilter 把编译器隐式添加的根父类型视为噪音
type NoiseFilter struct{}

func NewJavaNoiseFilter() *NoiseFilter {
	return &NoiseFilter{}
}

func (f *NoiseFilter) IsNoise(qn string) bool {
	switch qn {
	case objectQN, enumQN, recordQN:
		return true
	}
	return false
}
