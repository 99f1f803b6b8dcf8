package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName matches the service declared in departments.proto.
const ServiceName = "atlas.DepartmentService"

// unaryMethod builds the method descriptor for one unary RPC, standing in
// for the handler a protoc-generated stub would carry.
func unaryMethod[Req any, Res any](name string, call func(DepartmentServiceServer, context.Context, *Req) (*Res, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(DepartmentServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + name}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv.(DepartmentServiceServer), ctx, req.(*Req))
			})
		},
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DepartmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("GetAllDepartments", DepartmentServiceServer.GetAllDepartments),
		unaryMethod("GetDepartmentById", DepartmentServiceServer.GetDepartmentById),
		unaryMethod("GetDepartmentByName", DepartmentServiceServer.GetDepartmentByName),
		unaryMethod("CreateDepartment", DepartmentServiceServer.CreateDepartment),
		unaryMethod("UpdateDepartment", DepartmentServiceServer.UpdateDepartment),
		unaryMethod("DeleteDepartment", DepartmentServiceServer.DeleteDepartment),
		unaryMethod("SearchDepartmentsByName", DepartmentServiceServer.SearchDepartmentsByName),
		unaryMethod("SearchDepartmentsByManagerName", DepartmentServiceServer.SearchDepartmentsByManagerName),
		unaryMethod("SearchDepartmentsByDescription", DepartmentServiceServer.SearchDepartmentsByDescription),
		unaryMethod("GetDepartmentsByLocation", DepartmentServiceServer.GetDepartmentsByLocation),
		unaryMethod("GetActiveDepartments", DepartmentServiceServer.GetActiveDepartments),
		unaryMethod("GetInactiveDepartments", DepartmentServiceServer.GetInactiveDepartments),
		unaryMethod("GetDepartmentsByBudget", DepartmentServiceServer.GetDepartmentsByBudget),
		unaryMethod("GetDepartmentsByEmployeeCount", DepartmentServiceServer.GetDepartmentsByEmployeeCount),
		unaryMethod("GetDepartmentsByManagerEmail", DepartmentServiceServer.GetDepartmentsByManagerEmail),
		unaryMethod("GetDepartmentsByActiveAndLocation", DepartmentServiceServer.GetDepartmentsByActiveAndLocation),
		unaryMethod("ActivateDepartment", DepartmentServiceServer.ActivateDepartment),
		unaryMethod("DeactivateDepartment", DepartmentServiceServer.DeactivateDepartment),
		unaryMethod("UpdateDepartmentBudget", DepartmentServiceServer.UpdateDepartmentBudget),
		unaryMethod("UpdateDepartmentEmployeeCount", DepartmentServiceServer.UpdateDepartmentEmployeeCount),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/departments/rpc/departments.proto",
}

// Register attaches the department service to a gRPC server.
func Register(s grpc.ServiceRegistrar, srv DepartmentServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}
