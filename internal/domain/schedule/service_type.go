package schedule

import "strings"

type ServiceType string

const (
	ServiceBath         ServiceType = "BATH"
	ServiceGrooming     ServiceType = "GROOMING"
	ServiceBathGrooming ServiceType = "BATH_GROOMING"
)

func ParseServiceType(s string) (ServiceType, bool) {
	switch ServiceType(strings.ToUpper(s)) {
	case ServiceBath:
		return ServiceBath, true
	case ServiceGrooming:
		return ServiceGrooming, true
	case ServiceBathGrooming:
		return ServiceBathGrooming, true
	}
	return "", false
}
