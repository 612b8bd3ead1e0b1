package socket

// Events names every event the client emits or listens to. The remote has
// renamed events between releases, so the table is part of the client
// configuration rather than fixed.
type Events struct {
	// Emitted by devices.
	DeviceGetInfo                     Event
	DeviceUpdateStatus                Event
	DeviceUpdateStatistics            Event
	DeviceUpdateIperf                 Event
	DeviceUpdateServiceOperationModes Event
	ServiceUpdateStatus               Event
	ServiceUpdatePreview              Event
	ServiceUpdateVu                   Event

	// Emitted by users.
	DeviceSubscribeStatistics   Event
	DeviceUnsubscribeStatistics Event
	ServiceSubscribePreview     Event
	ServiceUnsubscribePreview   Event
	ServiceToggleRunning        Event

	// Pushed by the remote.
	DeviceUpdated                 Event
	DeviceStatisticsUpdated       Event
	DeviceStatusUpdated           Event
	DeviceRequestOwnership        Event
	DeviceRefreshClient           Event
	DeviceRequestIperf            Event
	DeviceIperfUpdated            Event
	DeviceConfigUpdated           Event
	ServiceUpdated                Event
	ServiceStatusUpdated          Event
	ServicePreviewUpdated         Event
	ServiceVuUpdated              Event
	ServiceToggleRunningRequested Event
	GroupUpdated                  Event
	UserUpdated                   Event
}

func DefaultEvents() Events {
	return Events{
		DeviceGetInfo:                     "device:get-info",
		DeviceUpdateStatus:                "device:update-status",
		DeviceUpdateStatistics:            "device:update-statistics",
		DeviceUpdateIperf:                 "device:update-iperf",
		DeviceUpdateServiceOperationModes: "device:update-service-operation-modes",
		ServiceUpdateStatus:               "service:update-status",
		ServiceUpdatePreview:              "service:update-preview",
		ServiceUpdateVu:                   "service:update-vu",

		DeviceSubscribeStatistics:   "device:subscribe-statistics",
		DeviceUnsubscribeStatistics: "device:unsubscribe-statistics",
		ServiceSubscribePreview:     "service:subscribe-preview",
		ServiceUnsubscribePreview:   "service:unsubscribe-preview",
		ServiceToggleRunning:        "service:toggle-running",

		DeviceUpdated:                 "device:updated",
		DeviceStatisticsUpdated:       "device:statistics-updated",
		DeviceStatusUpdated:           "device:status-updated",
		DeviceRequestOwnership:        "device:request-ownership",
		DeviceRefreshClient:           "device:refresh-client",
		DeviceRequestIperf:            "device:request-iperf",
		DeviceIperfUpdated:            "device:iperf-updated",
		DeviceConfigUpdated:           "device:config-updated",
		ServiceUpdated:                "service:updated",
		ServiceStatusUpdated:          "service:status-updated",
		ServicePreviewUpdated:         "service:preview-updated",
		ServiceVuUpdated:              "service:vu-updated",
		ServiceToggleRunningRequested: "service:toggle-running-requested",
		GroupUpdated:                  "group:updated",
		UserUpdated:                   "user:updated",
	}
}
