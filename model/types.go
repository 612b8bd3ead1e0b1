package model

import "time"

type AuthInfo struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type AuthRole string

const (
	AuthRoleAdmin  AuthRole = "ADMIN"
	AuthRoleUser   AuthRole = "USER"
	AuthRoleDevice AuthRole = "DEVICE"
)

type Auth struct {
	ID   string   `json:"id"`
	Key  string   `json:"key"`
	Role AuthRole `json:"role"`
}

type ServiceType string

const (
	ServiceTypeFeed   ServiceType = "FEED"
	ServiceTypeOutput ServiceType = "OUTPUT"
)

type Service struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	DisplayName    string      `json:"displayName,omitempty"`
	Type           ServiceType `json:"type,omitempty"`
	Config         string      `json:"config,omitempty"`
	ExclusiveLink  bool        `json:"exclusiveLink,omitempty"`
	LinkedServices []Service   `json:"linkedServices,omitempty"`
	Device         *Device     `json:"device,omitempty"`
}

type Device struct {
	ID       string    `json:"id"`
	Serial   string    `json:"serial,omitempty"`
	Name     string    `json:"name,omitempty"`
	Auth     *Auth     `json:"auth,omitempty"`
	Services []Service `json:"services,omitempty"`
	User     *User     `json:"user,omitempty"`
	Groups   []Group   `json:"groups,omitempty"`
	Leases   []Lease   `json:"leases,omitempty"`
}

type User struct {
	ID             string   `json:"id"`
	Username       string   `json:"username,omitempty"`
	Email          string   `json:"email,omitempty"`
	Auth           *Auth    `json:"auth,omitempty"`
	Devices        []Device `json:"devices,omitempty"`
	LeasesOwned    []Lease  `json:"leasesOwned,omitempty"`
	LeasesBorrowed []Lease  `json:"leasesBorrowed,omitempty"`
}

type Group struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Devices []Device `json:"devices,omitempty"`
	Users   []User   `json:"users,omitempty"`
}

type LeaseType string

const (
	LeaseTypeExclusive    LeaseType = "EXCLUSIVE"
	LeaseTypeNonExclusive LeaseType = "NON_EXCLUSIVE"
)

type Lease struct {
	ID          string    `json:"id"`
	Annotations string    `json:"annotations,omitempty"`
	Type        LeaseType `json:"type"`
	Start       time.Time `json:"start"`
	Expiration  time.Time `json:"expiration"`
	Canceled    bool      `json:"canceled,omitempty"`
	Owner       *User     `json:"owner,omitempty"`
	Borrower    *User     `json:"borrower,omitempty"`
	Devices     []Device  `json:"devices,omitempty"`
}

type Stream struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	SourceID  string   `json:"sourceId,omitempty"`
	TargetIDs []string `json:"targetIds,omitempty"`
	Running   bool     `json:"running,omitempty"`
}

// DeviceAuditReport is a point-in-time snapshot uploaded by a device.
type DeviceAuditReport struct {
	ID        string         `json:"id,omitempty"`
	DeviceID  string         `json:"deviceId"`
	CreatedAt time.Time      `json:"createdAt,omitempty"`
	Report    map[string]any `json:"report"`
}

type DeviceStatus struct {
	DeviceID string         `json:"deviceId,omitempty"`
	Online   bool           `json:"online"`
	Extra    map[string]any `json:"extra,omitempty"`
}

type ServiceStatus struct {
	ServiceID string         `json:"serviceId,omitempty"`
	Running   bool           `json:"running"`
	Extra     map[string]any `json:"extra,omitempty"`
}

type DeviceStatistics struct {
	CPU     float64        `json:"cpu"`
	Memory  float64        `json:"memory"`
	Disk    float64        `json:"disk,omitempty"`
	Network map[string]any `json:"network,omitempty"`
}

type IperfResult struct {
	Server        bool    `json:"server"`
	IPAddress     string  `json:"ipAddress,omitempty"`
	BitsPerSecond float64 `json:"bitsPerSecond,omitempty"`
	Error         string  `json:"error,omitempty"`
}

type IperfRequest struct {
	Server    bool   `json:"server"`
	IPAddress string `json:"ipAddress,omitempty"`
}

type OwnershipCode struct {
	Code       string `json:"code"`
	Expiration int64  `json:"expiration"`
}

type ToggleRunningAction string

const (
	ToggleRunningStart ToggleRunningAction = "START"
	ToggleRunningStop  ToggleRunningAction = "STOP"
)

type ToggleRunning struct {
	ID     string              `json:"id"`
	Action ToggleRunningAction `json:"action"`
}

type ServiceOperationMode struct {
	ServiceName string `json:"serviceName"`
	Mode        string `json:"mode"`
}

type ServiceConfigUpdate struct {
	ServiceName string `json:"serviceName"`
	Config      string `json:"config"`
}

type Subscriptions struct {
	Subscriptions []string `json:"subscriptions"`
}
