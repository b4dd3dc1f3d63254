//go:build go1.24

package tuple

type T2[T0, T1 any] = Tuple2[T0, T1]
