package client

import (
	"context"

	"github.com/dmitrijs2005/esgportal/internal/profiles"
	pb "github.com/dmitrijs2005/esgportal/internal/proto"
	"github.com/dmitrijs2005/esgportal/internal/rpc"
)

func (c *GRPCClient) storeCall(ctx context.Context, fn func(context.Context, ProfileAPI) error) error {
	api, err := c.profileAPI()
	if err != nil {
		return err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	return mapStoreError(fn(ctx, api))
}

func (c *GRPCClient) Get(ctx context.Context, uid string) (*profiles.Record, error) {
	var rec *profiles.Record
	err := c.storeCall(ctx, func(ctx context.Context, api ProfileAPI) error {
		resp, err := api.Get(ctx, &pb.UIDRequest{Uid: uid})
		if err != nil {
			return err
		}
		rec = rpc.ToRecord(resp.GetRecord())
		return nil
	})
	return rec, err
}

func (c *GRPCClient) Create(ctx context.Context, rec *profiles.Record) (*profiles.Record, error) {
	var out *profiles.Record
	err := c.storeCall(ctx, func(ctx context.Context, api ProfileAPI) error {
		resp, err := api.Create(ctx, &pb.RecordRequest{Record: rpc.FromRecord(rec)})
		if err != nil {
			return err
		}
		out = rpc.ToRecord(resp.GetRecord())
		return nil
	})
	return out, err
}

func (c *GRPCClient) Update(ctx context.Context, uid string, patch profiles.Patch) (*profiles.Record, error) {
	var out *profiles.Record
	err := c.storeCall(ctx, func(ctx context.Context, api ProfileAPI) error {
		resp, err := api.Update(ctx, &pb.PatchRequest{Uid: uid, Patch: rpc.FromPatch(patch)})
		if err != nil {
			return err
		}
		out = rpc.ToRecord(resp.GetRecord())
		return nil
	})
	return out, err
}

func (c *GRPCClient) TouchLastLogin(ctx context.Context, uid string) error {
	return c.storeCall(ctx, func(ctx context.Context, api ProfileAPI) error {
		_, err := api.TouchLastLogin(ctx, &pb.UIDRequest{Uid: uid})
		return err
	})
}

func (c *GRPCClient) Delete(ctx context.Context, uid string) error {
	return c.storeCall(ctx, func(ctx context.Context, api ProfileAPI) error {
		_, err := api.Delete(ctx, &pb.UIDRequest{Uid: uid})
		return err
	})
}

var _ profiles.Store = (*GRPCClient)(nil)
