// Package geo provides the spherical helpers used to place flow lines:
// great-circle distance, initial bearing, destination projection and a
// bezier spline for smoothing paths.
//
// Distances are in kilometres and bearings in degrees clockwise from north.
package geo
