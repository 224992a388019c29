package transport

import "cvr/internal/config"

// New builds a Transport from project transport settings. Unknown kinds are
// reported through the same unsupported-transport error as dispatch.
func New(settings config.TransportSettings, verifier string) (Transport, error) {
	switch settings.Kind {
	case KindSSH:
		return &SSH{
			Host:                 settings.Host,
			Port:                 settings.Port,
			User:                 settings.User,
			Password:             settings.Password,
			KeyFiles:             settings.KeyFiles,
			Timeout:              settings.Timeout,
			ConnectionRetries:    settings.ConnectionRetries,
			ConnectionRetrySleep: settings.ConnectionRetrySleep,
			MaxWaitUntilReady:    settings.MaxWaitUntilReady,
			KeepAlive:            settings.KeepAlive,
			KeepAliveInterval:    settings.KeepAliveInterval,
			Compression:          settings.Compression,
			CompressionLevel:     settings.CompressionLevel,
		}, nil
	case KindWinRM:
		return &WinRM{
			Endpoint:             settings.Endpoint,
			User:                 settings.User,
			Password:             settings.Password,
			ConnectionRetries:    settings.ConnectionRetries,
			ConnectionRetrySleep: settings.ConnectionRetrySleep,
			MaxWaitUntilReady:    settings.MaxWaitUntilReady,
		}, nil
	case KindDocker:
		return &Docker{
			ContainerID:          settings.ContainerID,
			Timeout:              settings.Timeout,
			ConnectionRetries:    settings.ConnectionRetries,
			ConnectionRetrySleep: settings.ConnectionRetrySleep,
			MaxWaitUntilReady:    settings.MaxWaitUntilReady,
		}, nil
	default:
		return nil, &UnsupportedTransportError{Verifier: verifier, Transport: settings.Kind}
	}
}
