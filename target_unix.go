//go:build unix && !linux && !darwin

package keep

const currentTarget = TargetUnix
