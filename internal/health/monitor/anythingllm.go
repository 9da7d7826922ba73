package monitor

import (
	"context"
	"crypto/x509"
	"errors"

	"sso-anythingllm-srv/internal/apikey"
	"sso-anythingllm-srv/internal/health"
	"sso-anythingllm-srv/pkg/anythingllm"
)

const sslHint = "SSL certificate verification failed, consider setting anythingllm.verify_ssl=false"

type anythingLLM struct {
	client anythingllm.Admin
	keys   apikey.UseCase
	creds  *anythingllm.Credentials
	url    string
}

// NewAnythingLLM probes the AnythingLLM API. With creds it signs in as the admin account,
// otherwise it verifies the current API key.
func NewAnythingLLM(client anythingllm.Admin, keys apikey.UseCase, creds *anythingllm.Credentials, url string) health.Monitor {
	return &anythingLLM{client: client, keys: keys, creds: creds, url: url}
}

func (m *anythingLLM) Name() string {
	return "anythingllm-api"
}

func (m *anythingLLM) Check(ctx context.Context) health.Status {
	st := m.check(ctx)
	st.URL = m.url
	return st
}

func (m *anythingLLM) check(ctx context.Context) health.Status {
	var err error
	if m.creds != nil {
		_, err = m.client.RequestToken(ctx, *m.creds)
	} else {
		key, kerr := m.keys.Current(ctx)
		if kerr != nil && anythingllm.KindOf(kerr) == anythingllm.KindUnknown {
			return health.Down("AnythingLLM API key is unavailable", kerr)
		}
		err = kerr
		if err == nil {
			err = m.client.CheckAuth(ctx, anythingllm.WithAuthToken(key.Value))
		}
	}
	if err == nil {
		return health.Up("AnythingLLM API is reachable")
	}

	switch anythingllm.KindOf(err) {
	case anythingllm.KindAuthentication:
		return health.Down("AnythingLLM API is reachable but authentication failed", err)
	case anythingllm.KindNetwork:
		st := health.Down("Network error connecting to AnythingLLM API", err)
		if isCertificateError(err) {
			st.Error = sslHint + ": " + st.Error
		}
		return st
	default:
		return health.Down("AnythingLLM API returned an error", err)
	}
}

func isCertificateError(err error) bool {
	var (
		unknownAuthority x509.UnknownAuthorityError
		invalid          x509.CertificateInvalidError
		hostname         x509.HostnameError
	)
	return errors.As(err, &unknownAuthority) || errors.As(err, &invalid) || errors.As(err, &hostname)
}
