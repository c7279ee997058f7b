// Package units names data sizes in bytes, in ISO (base 10) multiples.
package units

const (
	Kb = 1000
	Mb = Kb * Kb
	Gb = Mb * Kb
)
