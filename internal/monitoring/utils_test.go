package monitoring

import (
	"testing"
)

func Test_getSegmentName(t *testing.T) {
	type args struct {
		fullFuncName string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "pointer receiver method",
			args: args{
				fullFuncName: "github.com/svnhec/qoda-sub003/internal/services.(*settlement).ProcessSettlement",
			},
			want: "services.settlement.ProcessSettlement",
		},
		{
			name: "value receiver method",
			args: args{
				fullFuncName: "github.com/svnhec/qoda-sub003/internal/repositories.journalRepository.CreateGroup",
			},
			want: "repositories.journalRepository.CreateGroup",
		},
		{
			name: "plain function",
			args: args{
				fullFuncName: "github.com/svnhec/qoda-sub003/internal/config.Load",
			},
			want: "config.Load",
		},
		{
			name: "stdlib method",
			args: args{
				fullFuncName: "net/http.(*Server).Serve",
			},
			want: "http.Server.Serve",
		},
		{
			name: "runtime function",
			args: args{
				fullFuncName: "runtime.goexit",
			},
			want: "runtime.goexit",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getSegmentName(tt.args.fullFuncName); got != tt.want {
				t.Errorf("getSegmentName() = %v, want %v", got, tt.want)
			}
		})
	}
}
