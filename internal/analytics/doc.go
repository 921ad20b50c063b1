// Package analytics provides the numeric building blocks behind the survey
// figures: cubic-spline smoothing for the heart-rate trend, Gaussian kernel
// density estimation for the mood distribution, and the closed polygon
// geometry of the posture radar.
package analytics
