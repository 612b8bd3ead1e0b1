package model

import "time"

// Payload shapes carried in the data field of request channel responses.

type UserData struct {
	User User `json:"user"`
}

type UsersData struct {
	Users []User `json:"users"`
}

type DeviceData struct {
	Device Device `json:"device"`
}

type DevicesData struct {
	Devices []Device `json:"devices"`
}

type ServiceData struct {
	Service Service `json:"service"`
}

type ServicesData struct {
	Services []Service `json:"services"`
}

type GroupData struct {
	Group Group `json:"group"`
}

type GroupsData struct {
	Groups []Group `json:"groups"`
}

type StreamData struct {
	Stream Stream `json:"stream"`
}

type StreamsData struct {
	Streams []Stream `json:"streams"`
}

type LeaseData struct {
	Lease Lease `json:"lease"`
}

type LeasesData struct {
	Leases []Lease `json:"leases"`
}

type AuditReportData struct {
	Report DeviceAuditReport `json:"report"`
}

type AuditReportsData struct {
	Reports []DeviceAuditReport `json:"reports"`
}

// Request bodies.

type UserInput struct {
	Username string   `json:"username,omitempty"`
	Email    string   `json:"email,omitempty"`
	Password string   `json:"password,omitempty"`
	Role     AuthRole `json:"role,omitempty"`
}

type DeviceInput struct {
	Serial string `json:"serial,omitempty"`
	Name   string `json:"name,omitempty"`
	Key    string `json:"key,omitempty"`
	Secret string `json:"password,omitempty"`
}

type ServiceInput struct {
	Name          string      `json:"name,omitempty"`
	DisplayName   string      `json:"displayName,omitempty"`
	Type          ServiceType `json:"type,omitempty"`
	Config        string      `json:"config,omitempty"`
	ExclusiveLink *bool       `json:"exclusiveLink,omitempty"`
	DeviceID      string      `json:"deviceId,omitempty"`
}

type GroupInput struct {
	Name      string   `json:"name,omitempty"`
	DeviceIDs []string `json:"deviceIds,omitempty"`
	UserIDs   []string `json:"userIds,omitempty"`
}

type StreamInput struct {
	Name      string   `json:"name,omitempty"`
	SourceID  string   `json:"sourceId,omitempty"`
	TargetIDs []string `json:"targetIds,omitempty"`
}

type LeaseInput struct {
	Type        LeaseType `json:"type"`
	Start       time.Time `json:"start"`
	Expiration  time.Time `json:"expiration"`
	Annotations string    `json:"annotations,omitempty"`
	BorrowerID  string    `json:"borrowerId,omitempty"`
	DeviceIDs   []string  `json:"deviceIds"`
}

// ListOptions pages list endpoints. Zero values are omitted from the query.
type ListOptions struct {
	Limit  int
	Offset int
	Search string
}
