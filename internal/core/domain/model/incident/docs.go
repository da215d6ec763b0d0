// Package incident contains the incident aggregate: the record of a
// problem a driver reported against a delivery, with its own handling
// workflow (open, in review, resolved).
package incident
