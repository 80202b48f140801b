package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/logging"
	pb "github.com/dmitrijs2005/esgportal/internal/proto"
	"github.com/dmitrijs2005/esgportal/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpcmd "google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
)

// DefaultCallTimeout bounds every RPC that has no earlier deadline.
const DefaultCallTimeout = 15 * time.Second

// IdentityAPI is the identity service as seen by the client.
type IdentityAPI = pb.IdentityServiceClient

// ProfileAPI is the profile document service as seen by the client.
type ProfileAPI = pb.ProfileServiceClient

// Options configure a GRPCClient.
type Options struct {
	Endpoint string
	// Metadata persists the session between runs. Optional.
	Metadata metadata.Repository
	// Flow runs federated consent. Without it federated sign-in reports
	// PopupClosedByUser.
	Flow        identity.FederatedFlow
	Logger      logging.Logger
	CallTimeout time.Duration
	// DialOptions are appended to the defaults; tests pass a bufconn dialer.
	DialOptions []grpc.DialOption
}

// GRPCClient talks to the identity server.
type GRPCClient struct {
	endpoint    string
	meta        metadata.Repository
	flow        identity.FederatedFlow
	logger      logging.Logger
	callTimeout time.Duration
	dialOpts    []grpc.DialOption

	// connMu guards the lazily created connection.
	connMu   sync.Mutex
	conn     *grpc.ClientConn
	identity IdentityAPI
	profiles ProfileAPI

	mu           sync.Mutex
	current      *identity.Identity
	accessToken  string
	refreshToken string
	restored     bool

	// refreshMu makes concurrent expired calls share one refresh.
	refreshMu sync.Mutex

	emitMu    sync.Mutex
	listeners identity.Listeners
}

// NewGRPCClient builds a client. No connection is made until the first
// call.
func NewGRPCClient(opts Options) *GRPCClient {
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger{}
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = DefaultCallTimeout
	}
	return &GRPCClient{
		endpoint:    opts.Endpoint,
		meta:        opts.Metadata,
		flow:        opts.Flow,
		logger:      opts.Logger.With("module", "grpcclient"),
		callTimeout: opts.CallTimeout,
		dialOpts:    opts.DialOptions,
		restored:    opts.Metadata == nil,
	}
}

// apis returns the service stubs, creating the shared connection on first
// use. Concurrent callers get the same connection.
func (c *GRPCClient) apis() (IdentityAPI, ProfileAPI, error) {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.identity != nil {
		return c.identity, c.profiles, nil
	}
	if c.endpoint == "" {
		return nil, nil, autherr.Wrap(autherr.CodeServiceUnavailable, ErrNoEndpoint)
	}

	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, c.dialOpts...)

	conn, err := grpc.NewClient(c.endpoint, opts...)
	if err != nil {
		return nil, nil, autherr.Wrap(autherr.CodeServiceUnavailable, fmt.Errorf("dial %s: %w", c.endpoint, err))
	}
	c.conn = conn
	c.identity = pb.NewIdentityServiceClient(conn)
	c.profiles = pb.NewProfileServiceClient(conn)
	c.logger.Debug(context.Background(), "connection created", "endpoint", c.endpoint)
	return c.identity, c.profiles, nil
}

func (c *GRPCClient) identityAPI() (IdentityAPI, error) {
	api, _, err := c.apis()
	return api, err
}

func (c *GRPCClient) profileAPI() (ProfileAPI, error) {
	_, api, err := c.apis()
	return api, err
}

// Close closes the connection if one was made.
func (c *GRPCClient) Close() error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn, c.identity, c.profiles = nil, nil, nil
	return err
}

func (c *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.callTimeout)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := grpcmd.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = grpcmd.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}
	return grpcmd.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) tokens() (access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if method == pb.IdentityService_Refresh_FullMethodName {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, _ := c.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || !isExpiredToken(err) {
		return err
	}

	fresh, rerr := c.refresh(ctx, access)
	if rerr != nil {
		c.logger.Warn(ctx, "token refresh failed", "method", method, "error", rerr)
		return err
	}

	return invoker(withAccessToken(ctx, fresh), method, req, reply, cc, opts...)
}

// refresh exchanges the refresh token for new tokens. stale is the access
// token that was rejected; if another call already replaced it, the new one
// is returned without a round trip. A refresh token the server rejects ends
// the local session.
func (c *GRPCClient) refresh(ctx context.Context, stale string) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	access, refreshToken := c.tokens()
	if access != stale && access != "" {
		return access, nil
	}
	if refreshToken == "" {
		return "", autherr.ErrNotAuthenticated
	}

	api, err := c.identityAPI()
	if err != nil {
		return "", err
	}
	sess, err := api.Refresh(ctx, &pb.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		err = mapError(err)
		if isRejectedSession(err) {
			c.logger.Info(ctx, "refresh token rejected, signing out locally")
			c.endSession(ctx)
		}
		return "", err
	}

	c.applySession(ctx, sess, false)
	return sess.GetAccessToken(), nil
}

// applySession stores the tokens and identity of sess and persists them.
// Listeners are told when notify is set.
func (c *GRPCClient) applySession(ctx context.Context, sess *pb.Session, notify bool) *identity.Identity {
	ident := rpc.ToIdentity(sess.GetIdentity())
	if ident != nil {
		ident.RefreshToken = sess.GetRefreshToken()
	}

	c.mu.Lock()
	c.current = ident.Clone()
	c.accessToken = sess.GetAccessToken()
	c.refreshToken = sess.GetRefreshToken()
	c.mu.Unlock()

	c.persist(ctx, ident)
	if notify {
		c.notify()
	}
	return ident
}

// setIdentity replaces the identity, keeping the tokens.
func (c *GRPCClient) setIdentity(w *pb.Identity) {
	ident := rpc.ToIdentity(w)
	if ident == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil || c.current.UID != ident.UID {
		return
	}
	ident.RefreshToken = c.refreshToken
	c.current = ident
}

// endSession forgets the local session and tells listeners.
func (c *GRPCClient) endSession(ctx context.Context) {
	c.mu.Lock()
	changed := c.current != nil || c.refreshToken != ""
	c.current = nil
	c.accessToken = ""
	c.refreshToken = ""
	c.mu.Unlock()

	c.forget(ctx)
	if changed {
		c.notify()
	}
}

func (c *GRPCClient) persist(ctx context.Context, ident *identity.Identity) {
	if c.meta == nil || ident == nil {
		return
	}
	err := c.meta.SetMany(context.WithoutCancel(ctx), map[string][]byte{
		metadata.KeyRefreshToken: []byte(ident.RefreshToken),
		metadata.KeyUID:          []byte(ident.UID),
		metadata.KeyEmail:        []byte(ident.Email),
		metadata.KeyEndpoint:     []byte(c.endpoint),
	})
	if err != nil {
		c.logger.Warn(ctx, "failed to save session", "error", err)
	}
}

func (c *GRPCClient) forget(ctx context.Context) {
	if c.meta == nil {
		return
	}
	if err := c.meta.Delete(context.WithoutCancel(ctx), metadata.SessionKeys...); err != nil {
		c.logger.Warn(ctx, "failed to remove saved session", "error", err)
	}
}

// Restore resumes the session saved by a previous run, then reports the
// resulting state to subscribers. A saved token the server rejects is
// dropped; an unreachable server leaves it in place for the next run and
// the error is returned.
func (c *GRPCClient) Restore(ctx context.Context) (err error) {
	defer c.markRestored()

	if c.meta == nil {
		return nil
	}
	token, err := c.meta.Get(ctx, metadata.KeyRefreshToken)
	if err != nil {
		return fmt.Errorf("read saved session: %w", err)
	}
	if len(token) == 0 {
		return nil
	}
	endpoint, err := c.meta.Get(ctx, metadata.KeyEndpoint)
	if err != nil {
		return fmt.Errorf("read saved session: %w", err)
	}
	if string(endpoint) != c.endpoint {
		c.logger.Info(ctx, "saved session belongs to another server, ignoring it", "saved", string(endpoint))
		c.forget(ctx)
		return nil
	}

	api, err := c.identityAPI()
	if err != nil {
		return err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	sess, err := api.Refresh(ctx, &pb.RefreshRequest{RefreshToken: string(token)})
	if err != nil {
		err = mapError(err)
		if isRejectedSession(err) {
			c.logger.Info(ctx, "saved session expired")
			c.forget(ctx)
			return nil
		}
		return err
	}

	ident := c.applySession(ctx, sess, false)
	c.logger.Info(ctx, "session restored", "uid", ident.UID)
	return nil
}

func (c *GRPCClient) markRestored() {
	c.mu.Lock()
	c.restored = true
	c.mu.Unlock()
	c.notify()
}

// notify emits the state as of now, in order.
func (c *GRPCClient) notify() {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	c.listeners.Emit(c.CurrentIdentity())
}

// Subscribe registers fn. It is called right away if the initial state is
// known, otherwise once Restore has finished.
func (c *GRPCClient) Subscribe(fn func(*identity.Identity)) func() {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	remove := c.listeners.Add(fn)

	c.mu.Lock()
	restored := c.restored
	c.mu.Unlock()
	if restored {
		fn(c.CurrentIdentity())
	}
	return remove
}

func (c *GRPCClient) CurrentIdentity() *identity.Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Clone()
}

// Ping checks that the server answers.
func (c *GRPCClient) Ping(ctx context.Context) error {
	api, err := c.identityAPI()
	if err != nil {
		return err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := api.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return autherr.New(autherr.CodeServiceUnavailable, "server status "+resp.GetStatus())
	}
	return nil
}
